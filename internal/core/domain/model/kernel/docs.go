// Package kernel provides the shared value objects of the checkout domain.
//
// Currently this is UUID, the identifier of checkout sessions and submission
// attempts. Its zero value is invalid so that an identifier which was never
// assigned cannot slip through a repository lookup.
package kernel
