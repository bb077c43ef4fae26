// Package mail delivers verification codes by email through Amazon SES v2.
//
// The sender is optional: without a configured from address it runs disabled,
// logs that a code would have been sent and reports success, which keeps local
// development and tests free of AWS credentials.
package mail
