package certs

import (
	"crypto/tls"
	"crypto/x509"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func leaf(t *testing.T, cert tls.Certificate) *x509.Certificate {
	t.Helper()
	require.Len(t, cert.Certificate, 1)
	parsed, err := x509.ParseCertificate(cert.Certificate[0])
	require.NoError(t, err)
	return parsed
}

func TestStore_IssuesCertificate(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "certs")
	store := NewStore(dir)

	cert, err := store.LoadOrCreate()
	require.NoError(t, err)

	parsed := leaf(t, cert)
	assert.Equal(t, Organization, parsed.Subject.Organization[0])
	assert.NoError(t, parsed.VerifyHostname("localhost"))
	assert.NoError(t, parsed.VerifyHostname("127.0.0.1"))
	assert.True(t, parsed.NotAfter.After(time.Now().Add(Validity-time.Hour)))

	certFile, keyFile := store.Paths()
	for _, f := range []string{certFile, keyFile} {
		info, err := os.Stat(f)
		require.NoError(t, err)
		assert.Equal(t, os.FileMode(0o600), info.Mode().Perm())
	}
}

func TestStore_ReusesValidCertificate(t *testing.T) {
	store := NewStore(t.TempDir())

	first, err := store.LoadOrCreate()
	require.NoError(t, err)
	second, err := store.LoadOrCreate()
	require.NoError(t, err)

	assert.Equal(t, leaf(t, first).SerialNumber, leaf(t, second).SerialNumber)
}

func TestStore_ReissuesExpiredCertificate(t *testing.T) {
	store := NewStore(t.TempDir())

	first, err := store.LoadOrCreate()
	require.NoError(t, err)

	store.now = func() time.Time { return time.Now().Add(2 * Validity) }
	second, err := store.LoadOrCreate()
	require.NoError(t, err)

	assert.NotEqual(t, leaf(t, first).SerialNumber, leaf(t, second).SerialNumber)
}

func TestStore_ReplacesCorruptFiles(t *testing.T) {
	dir := t.TempDir()
	store := NewStore(dir)
	certFile, keyFile := store.Paths()
	require.NoError(t, os.WriteFile(certFile, []byte("not a cert"), 0o600))
	require.NoError(t, os.WriteFile(keyFile, []byte("not a key"), 0o600))

	cert, err := store.LoadOrCreate()
	require.NoError(t, err)
	assert.Equal(t, Organization, leaf(t, cert).Subject.Organization[0])
}

func TestStore_UnwritableDirectory(t *testing.T) {
	if os.Getuid() == 0 {
		t.Skip("permissions are not enforced for root")
	}
	parent := t.TempDir()
	require.NoError(t, os.Chmod(parent, 0o500))
	t.Cleanup(func() { _ = os.Chmod(parent, 0o700) })

	_, err := NewStore(filepath.Join(parent, "certs")).LoadOrCreate()
	assert.Error(t, err)
}
