// Package main provides the entry point for otpowner.
//
// otpowner answers who owns a hardware OTP key by looking tokens up in a
// CSV registry export. It runs an interactive prompt by default and offers
// one-shot commands for scripting:
//
//	otpowner [TABLE]
//	otpowner lookup ubnu01234567
//	otpowner owner alice --output json
//	otpowner encode ubnu01234567
//
// The exit status is 0 on success, 1 when nothing matched, 2 for bad
// input and 3 when the table could not be read.
package main
