package errs

import "errors"

// Sentinel errors shared by the campaign usecase and its adapters
var (
	// Source errors
	ErrOrderFetchFailed = errors.New("order fetch failed")
	ErrMalformedOrder   = errors.New("malformed order record")

	// Sink errors
	ErrCouponCreationFailed = errors.New("coupon creation failed")
	ErrDispatchFailed       = errors.New("message dispatch failed")
	ErrNoRecipient          = errors.New("no usable recipient number")

	// Run errors
	ErrRunInProgress = errors.New("campaign run already in progress")
	ErrRunFailed     = errors.New("campaign run failed")
	ErrRunnerClosed  = errors.New("campaign runner is shut down")
)
