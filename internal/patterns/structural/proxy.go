package structural

import (
	"context"
	"errors"
	"fmt"
	"io"
	"sync"
	"sync/atomic"

	"golang.org/x/time/rate"
)

var ErrThrottled = errors.New("request throttled")

// Service is the subject shared by the real service and its proxies.
type Service interface {
	Request(ctx context.Context) error
}

type RealService struct{ out io.Writer }

func (s *RealService) Request(context.Context) error {
	fmt.Fprintln(s.out, "RealService: Handling request.")
	return nil
}

// ServiceProxy creates the RealService on first use and delegates to it.
type ServiceProxy struct {
	out   io.Writer
	once  sync.Once
	real  *RealService
	ready atomic.Bool
}

func NewServiceProxy(out io.Writer) *ServiceProxy { return &ServiceProxy{out: out} }

func (p *ServiceProxy) Request(ctx context.Context) error {
	p.once.Do(func() {
		fmt.Fprintln(p.out, "ServiceProxy: Initializing RealService.")
		p.real = &RealService{out: p.out}
		p.ready.Store(true)
	})
	fmt.Fprintln(p.out, "ServiceProxy: delegating request.")
	return p.real.Request(ctx)
}

// Initialized reports whether the real subject has been built.
func (p *ServiceProxy) Initialized() bool { return p.ready.Load() }

// ThrottledService is a protection proxy that admits calls through a token bucket.
type ThrottledService struct {
	next    Service
	limiter *rate.Limiter
}

func NewThrottledService(next Service, rps float64, burst int) *ThrottledService {
	return &ThrottledService{next: next, limiter: rate.NewLimiter(rate.Limit(rps), burst)}
}

func (t *ThrottledService) Request(ctx context.Context) error {
	if !t.limiter.Allow() {
		return ErrThrottled
	}
	return t.next.Request(ctx)
}

// ProxyDemo runs the lazy proxy twice, then sends burst+1 calls through a throttling proxy.
func ProxyDemo(rps float64, burst int) func(ctx context.Context, w io.Writer) error {
	return func(ctx context.Context, w io.Writer) error {
		lazy := NewServiceProxy(w)
		for range 2 {
			if err := lazy.Request(ctx); err != nil {
				return err
			}
		}

		fmt.Fprintf(w, "-- throttled proxy (burst %d) --\n", burst)
		guarded := NewThrottledService(&RealService{out: w}, rps, burst)
		for i := range burst + 1 {
			if err := guarded.Request(ctx); err != nil {
				if !errors.Is(err, ErrThrottled) {
					return err
				}
				fmt.Fprintf(w, "ThrottledService: request %d rejected: %v\n", i+1, err)
			}
		}
		return nil
	}
}
