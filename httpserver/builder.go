package httpserver

import (
	"net/http"
	"time"

	"github.com/MKhiriev/go-server-settings/logging"
	"github.com/MKhiriev/go-server-settings/settings"
)

// Builder collects server configuration before Run. The zero value of every
// knob means "keep the net/http default"; settings.Apply only touches the
// knobs whose settings keys are present.
type Builder struct {
	handler http.Handler
	log     *logging.Logger

	addrs           []settings.Address
	workers         int
	backlog         int
	maxConns        int
	maxConnRate     int
	keepAlive       *time.Duration
	clientTimeout   *time.Duration
	clientShutdown  *time.Duration
	shutdownTimeout *time.Duration
}

var _ settings.Builder = (*Builder)(nil)

// NewBuilder returns a Builder serving handler. A nil log discards server
// lifecycle output.
func NewBuilder(handler http.Handler, log *logging.Logger) *Builder {
	if log == nil {
		log = logging.Nop()
	}
	return &Builder{handler: handler, log: log}
}

func (b *Builder) BindAddresses(addrs []settings.Address) { b.addrs = addrs }

func (b *Builder) WorkerCount(n int) { b.workers = n }

// Backlog records the requested accept-queue depth. The operating system
// sizes the actual queue; the value is surfaced in the startup log.
func (b *Builder) Backlog(n int) { b.backlog = n }

func (b *Builder) MaxConnections(n int) { b.maxConns = n }

func (b *Builder) MaxConnectionRate(n int) { b.maxConnRate = n }

func (b *Builder) KeepAlive(d time.Duration) { b.keepAlive = &d }

func (b *Builder) ClientTimeout(d time.Duration) { b.clientTimeout = &d }

func (b *Builder) ClientShutdown(d time.Duration) { b.clientShutdown = &d }

func (b *Builder) ShutdownTimeout(d time.Duration) { b.shutdownTimeout = &d }
