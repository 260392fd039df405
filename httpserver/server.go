package httpserver

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"os/signal"
	"runtime"
	"sync"
	"syscall"
	"time"

	"golang.org/x/net/netutil"
)

// Run binds every configured address and serves until ctx is canceled or a
// SIGINT/SIGTERM/SIGQUIT arrives, then shuts down gracefully. When a
// shutdown timeout was configured, connections still open after it are
// abandoned.
func (b *Builder) Run(ctx context.Context) error {
	if len(b.addrs) == 0 {
		return errNoBindAddresses
	}
	if b.workers > 0 {
		runtime.GOMAXPROCS(b.workers)
	}

	srv := &http.Server{Handler: b.handler}
	if b.clientTimeout != nil {
		srv.ReadHeaderTimeout = *b.clientTimeout
	}
	if b.clientShutdown != nil {
		srv.WriteTimeout = *b.clientShutdown
	}
	if b.keepAlive != nil {
		if *b.keepAlive == 0 {
			srv.SetKeepAlivesEnabled(false)
		} else {
			srv.IdleTimeout = *b.keepAlive
		}
	}

	listeners, err := b.listen()
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(ctx, syscall.SIGINT, syscall.SIGTERM, syscall.SIGQUIT)
	defer stop()

	b.log.Info().
		Int("listeners", len(listeners)).
		Int("backlog", b.backlog).
		Int("max_connections", b.maxConns).
		Msg("http server starting")

	errCh := make(chan error, len(listeners))
	var wg sync.WaitGroup
	for _, ln := range listeners {
		wg.Add(1)
		go func(ln net.Listener) {
			defer wg.Done()
			if err := srv.Serve(ln); err != nil && !errors.Is(err, http.ErrServerClosed) {
				errCh <- err
			}
		}(ln)
	}

	var serveErr error
	select {
	case <-ctx.Done():
		b.log.Info().Msg("shutdown requested")
	case serveErr = <-errCh:
		b.log.Error().Err(serveErr).Msg("listener failed")
	}

	shutdownCtx := context.Background()
	if b.shutdownTimeout != nil {
		var cancel context.CancelFunc
		shutdownCtx, cancel = context.WithTimeout(shutdownCtx, *b.shutdownTimeout)
		defer cancel()
	}
	shutdownErr := srv.Shutdown(shutdownCtx)
	wg.Wait()
	b.log.Info().Msg("http server stopped")

	if serveErr != nil {
		return serveErr
	}
	return shutdownErr
}

// listen opens one listener per bind address, wrapping each with the
// configured connection cap and accept pacing. On any failure the already
// opened listeners are closed.
func (b *Builder) listen() ([]net.Listener, error) {
	listeners := make([]net.Listener, 0, len(b.addrs))
	for _, addr := range b.addrs {
		ln, err := net.Listen("tcp", addr.String())
		if err != nil {
			for _, open := range listeners {
				open.Close()
			}
			return nil, fmt.Errorf("bind %s: %w", addr, err)
		}
		if b.maxConns > 0 {
			ln = netutil.LimitListener(ln, b.maxConns)
		}
		if b.maxConnRate > 0 {
			ln = newRateListener(ln, b.maxConnRate)
		}
		listeners = append(listeners, ln)
	}
	return listeners, nil
}

// rateListener paces Accept so no more than perSecond connections are
// accepted per second on the wrapped listener.
type rateListener struct {
	net.Listener
	interval time.Duration

	mu   sync.Mutex
	next time.Time
}

func newRateListener(ln net.Listener, perSecond int) net.Listener {
	return &rateListener{
		Listener: ln,
		interval: time.Second / time.Duration(perSecond),
	}
}

func (l *rateListener) Accept() (net.Conn, error) {
	l.mu.Lock()
	now := time.Now()
	if l.next.After(now) {
		wait := l.next.Sub(now)
		l.next = l.next.Add(l.interval)
		l.mu.Unlock()
		time.Sleep(wait)
	} else {
		l.next = now.Add(l.interval)
		l.mu.Unlock()
	}
	return l.Listener.Accept()
}
