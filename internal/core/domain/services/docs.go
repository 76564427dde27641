// Package services contains stateless domain services that implement business
// policies spanning the order aggregate: the lifecycle progression rules
// evaluated on every engine tick and the completion-time estimator used when
// an order is placed. Randomness is always injected so tests can force either
// branch of the probabilistic rules.
package services
