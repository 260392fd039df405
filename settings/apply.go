package settings

import "time"

// Builder is the capability surface of an HTTP server under construction.
// A settings value is mapped onto it by [BasicSettings.Apply]; each setter
// corresponds to one settings key and is called at most once per Apply.
type Builder interface {
	// BindAddresses sets the listen targets.
	BindAddresses(addrs []Address)
	// WorkerCount sets the number of worker threads.
	WorkerCount(n int)
	// Backlog sets the requested accept-queue depth.
	Backlog(n int)
	// MaxConnections caps concurrent connections across all listeners.
	MaxConnections(n int)
	// MaxConnectionRate caps connections accepted per second, per listener.
	MaxConnectionRate(n int)
	// KeepAlive sets the idle keep-alive period. 0 disables keep-alive.
	KeepAlive(d time.Duration)
	// ClientTimeout bounds how long a client may take to transmit its
	// request head. 0 disables the timeout.
	ClientTimeout(d time.Duration)
	// ClientShutdown bounds how long a connection may take to drain during
	// shutdown.
	ClientShutdown(d time.Duration)
	// ShutdownTimeout bounds graceful shutdown after a stop signal.
	ShutdownTimeout(d time.Duration)
}

// Apply maps the settings onto b. Every present field results in exactly one
// builder call; an absent optional field skips its setter entirely so the
// builder keeps its own default. Seconds-valued fields are converted to
// time.Duration.
//
// Apply assumes s already satisfies [BasicSettings.Validate]; it performs no
// validation of its own and returns no error. It does not retain s.
func (s *BasicSettings[X]) Apply(b Builder) {
	b.BindAddresses(s.Hosts)
	if s.Workers != nil {
		b.WorkerCount(*s.Workers)
	}
	if s.Backlog != nil {
		b.Backlog(*s.Backlog)
	}
	if s.MaxConnections != nil {
		b.MaxConnections(*s.MaxConnections)
	}
	if s.MaxConnectionRate != nil {
		b.MaxConnectionRate(*s.MaxConnectionRate)
	}
	if s.KeepAlive != nil {
		b.KeepAlive(time.Duration(*s.KeepAlive) * time.Second)
	}
	if s.ClientTimeout != nil {
		b.ClientTimeout(time.Duration(*s.ClientTimeout) * time.Second)
	}
	if s.ClientShutdown != nil {
		b.ClientShutdown(time.Duration(*s.ClientShutdown) * time.Second)
	}
	if s.ShutdownTimeout != nil {
		b.ShutdownTimeout(time.Duration(*s.ShutdownTimeout) * time.Second)
	}
}
