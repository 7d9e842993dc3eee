// Package model holds the request and response shapes exchanged with the
// template classification service, plus small helpers shared by every
// renderer (score tiers and percentages).
package model
