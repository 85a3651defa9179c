package vexlcrypto

import (
	"context"
	"sync/atomic"
	"time"
)

// SecretRequest is the input to an ECDH computation.
type SecretRequest struct {
	// Curve is the curve both keys belong to.
	Curve Curve
	// PrivateKey is the local private scalar, big-endian.
	PrivateKey []byte
	// PublicKey is the remote SEC1 point, compressed or uncompressed.
	PublicKey []byte
}

// SharedSecret is the result of an ECDH computation.
type SharedSecret struct {
	// Secret is the x-coordinate of the shared point, padded to the field size.
	Secret []byte
	// PublicKey is the compressed public point of the local private key.
	PublicKey []byte
}

// ECDHProvider computes ECDH shared secrets. It is the only operation in
// this package that may block; implementations should return when ctx is
// done.
//
// Implementations must be safe for concurrent use.
type ECDHProvider interface {
	// ComputeSecret agrees a secret between req.PrivateKey and req.PublicKey.
	ComputeSecret(ctx context.Context, req SecretRequest) (*SharedSecret, error)

	// Name returns the provider name for logging and debugging.
	// Examples: "native", "simulated"
	Name() string
}

// NativeProvider is the reference provider. It performs real ECDH on the
// supported curves.
type NativeProvider struct{}

// Name implements ECDHProvider.
func (NativeProvider) Name() string { return "native" }

// ComputeSecret implements ECDHProvider.
func (NativeProvider) ComputeSecret(ctx context.Context, req SecretRequest) (*SharedSecret, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	backend, err := req.Curve.backend()
	if err != nil {
		return nil, err
	}

	secret, err := backend.SharedSecret(req.PrivateKey, req.PublicKey)
	if err != nil {
		return nil, err
	}

	pub, err := backend.PublicPoint(req.PrivateKey, true)
	if err != nil {
		return nil, err
	}

	return &SharedSecret{Secret: secret, PublicKey: pub}, nil
}

// Default outputs of SimulatedProvider.
var (
	DefaultSimulatedSecret    = []byte("bar")
	DefaultSimulatedPublicKey = []byte("foo")
)

// SimulatedProvider ignores its inputs, waits Delay and returns fixed bytes.
// It measures the cost of the provider boundary itself; data encrypted with
// it can only be decrypted with it.
type SimulatedProvider struct {
	// Delay is how long each computation takes. Zero returns immediately.
	Delay time.Duration
	// Secret is returned as the shared secret. Defaults to "bar".
	Secret []byte
	// PublicKey is returned as the local public key. Defaults to "foo".
	PublicKey []byte
}

// Name implements ECDHProvider.
func (SimulatedProvider) Name() string { return "simulated" }

// ComputeSecret implements ECDHProvider.
func (p SimulatedProvider) ComputeSecret(ctx context.Context, _ SecretRequest) (*SharedSecret, error) {
	if p.Delay > 0 {
		timer := time.NewTimer(p.Delay)
		defer timer.Stop()

		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		case <-timer.C:
		}
	} else if err := ctx.Err(); err != nil {
		return nil, err
	}

	secret := p.Secret
	if secret == nil {
		secret = DefaultSimulatedSecret
	}
	pub := p.PublicKey
	if pub == nil {
		pub = DefaultSimulatedPublicKey
	}

	return &SharedSecret{
		Secret:    append([]byte(nil), secret...),
		PublicKey: append([]byte(nil), pub...),
	}, nil
}

// ProviderFunc adapts a function to the ECDHProvider interface.
type ProviderFunc func(ctx context.Context, req SecretRequest) (*SharedSecret, error)

// ComputeSecret calls f(ctx, req).
func (f ProviderFunc) ComputeSecret(ctx context.Context, req SecretRequest) (*SharedSecret, error) {
	return f(ctx, req)
}

// Name implements ECDHProvider.
func (ProviderFunc) Name() string { return "func" }

// providerHolder boxes the interface so it can live in an atomic.Pointer.
type providerHolder struct {
	provider ECDHProvider
}

// ProviderSlot holds the active ECDHProvider. Set and Get are atomic and the
// last Set wins. The zero value holds NativeProvider.
type ProviderSlot struct {
	current atomic.Pointer[providerHolder]
}

// NewProviderSlot returns a slot holding p, or NativeProvider when p is nil.
func NewProviderSlot(p ECDHProvider) *ProviderSlot {
	s := &ProviderSlot{}
	s.Set(p)
	return s
}

// Set replaces the active provider. Computations already dispatched keep
// the provider they started with. A nil provider resets the slot.
func (s *ProviderSlot) Set(p ECDHProvider) {
	if p == nil {
		s.current.Store(nil)
		return
	}
	s.current.Store(&providerHolder{provider: p})
}

// Get returns the active provider.
func (s *ProviderSlot) Get() ECDHProvider {
	if h := s.current.Load(); h != nil {
		return h.provider
	}
	return NativeProvider{}
}

// Reset restores NativeProvider.
func (s *ProviderSlot) Reset() {
	s.current.Store(nil)
}

// Dispatch starts a computation on the provider active right now and
// returns without waiting for it. Later calls to Set do not affect it.
func (s *ProviderSlot) Dispatch(ctx context.Context, req SecretRequest) *PendingSecret {
	p := &PendingSecret{
		provider: s.Get(),
		done:     make(chan struct{}),
	}

	go func() {
		defer close(p.done)
		p.result, p.err = p.provider.ComputeSecret(ctx, req)
	}()

	return p
}

// PendingSecret is an ECDH computation in progress.
type PendingSecret struct {
	provider ECDHProvider
	done     chan struct{}
	result   *SharedSecret
	err      error
}

// Provider returns the provider the computation was dispatched to.
func (p *PendingSecret) Provider() ECDHProvider {
	return p.provider
}

// Done is closed when the computation finishes.
func (p *PendingSecret) Done() <-chan struct{} {
	return p.done
}

// Wait blocks until the computation finishes or ctx is done. Returning
// early abandons the wait only; the provider keeps running until it
// observes the context it was dispatched with.
func (p *PendingSecret) Wait(ctx context.Context) (*SharedSecret, error) {
	select {
	case <-p.done:
		return p.result, p.err
	case <-ctx.Done():
		return nil, ctx.Err()
	}
}

var defaultSlot ProviderSlot

// DefaultProviderSlot returns the process-wide slot used by EciesEncrypt,
// EciesDecrypt and every HybridCipher built without a provider option.
func DefaultProviderSlot() *ProviderSlot {
	return &defaultSlot
}

// SetECDHProvider replaces the process-wide provider.
func SetECDHProvider(p ECDHProvider) {
	defaultSlot.Set(p)
}

// CurrentECDHProvider returns the process-wide provider.
func CurrentECDHProvider() ECDHProvider {
	return defaultSlot.Get()
}

// ResetECDHProvider restores the process-wide provider to NativeProvider.
func ResetECDHProvider() {
	defaultSlot.Reset()
}
