// Package shutdown provides interrupt handling and cleanup for otpowner.
//
// A Handler turns SIGINT and SIGTERM into context cancellation and runs
// registered cleanup hooks once, in reverse order of registration.
//
// Usage:
//
//	h := shutdown.NewHandler(5 * time.Second)
//	ctx, stop := h.NotifyContext(context.Background())
//	defer stop()
//	defer h.Shutdown()
package shutdown
