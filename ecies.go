package vexlcrypto

import (
	"context"
	"io"
	"log/slog"

	"github.com/vexl-it/vexl-crypto-go/internal/crypto"
	"github.com/vexl-it/vexl-crypto-go/internal/envelope"
)

// HybridCipher encrypts payloads for a recipient's public key with an
// ephemeral ECDH key agreement followed by the stretched-password cipher.
//
// The envelope carries a MAC for wire compatibility but Decrypt never checks
// it: a wrong key or a tampered ciphertext decrypts to wrong plaintext
// without an error.
//
// The zero value uses the process-wide provider slot and no logging.
// HybridCipher is safe for concurrent use.
type HybridCipher struct {
	slot       *ProviderSlot
	randReader io.Reader
	logger     *slog.Logger
}

// NewHybridCipher creates a HybridCipher. Without options it uses the
// process-wide provider slot, crypto/rand and no logging.
func NewHybridCipher(opts ...Option) *HybridCipher {
	cfg := &cipherConfig{
		slot:   DefaultProviderSlot(),
		logger: discardLogger,
	}

	for _, opt := range opts {
		opt(cfg)
	}

	return &HybridCipher{
		slot:       cfg.slot,
		randReader: cfg.randReader,
		logger:     cfg.logger,
	}
}

// Provider returns the provider the next call would use.
func (h *HybridCipher) Provider() ECDHProvider {
	return h.providerSlot().Get()
}

func (h *HybridCipher) providerSlot() *ProviderSlot {
	if h.slot == nil {
		return DefaultProviderSlot()
	}
	return h.slot
}

func (h *HybridCipher) log() *slog.Logger {
	if h.logger == nil {
		return discardLogger
	}
	return h.logger
}

// Encrypt encrypts plaintext for recipient. A fresh ephemeral key on the
// recipient's curve is used for every call. The plaintext is zero padded to
// a multiple of 128 bytes, so trailing zero bytes do not survive a round
// trip.
func (h *HybridCipher) Encrypt(ctx context.Context, recipient PublicKeyPemBase64, plaintext string) (string, error) {
	backend, point, err := decodePublicKey(recipient)
	if err != nil {
		return "", err
	}

	ephemeral, err := crypto.GenerateKeypair(backend, h.randReader)
	if err != nil {
		return "", &CipherError{Op: "random", Err: err}
	}

	ephemeralPoint, err := ephemeral.CompressedPoint()
	if err != nil {
		return "", &CipherError{Op: "random", Err: err}
	}

	shared, provider, err := h.computeSecret(ctx, SecretRequest{
		Curve:      curveOf(backend),
		PrivateKey: ephemeral.Scalar,
		PublicKey:  point,
	})
	if err != nil {
		return "", &CipherError{Op: "ecdh", Err: err}
	}

	padded := crypto.PadZeros([]byte(plaintext), crypto.EnvelopeBlockSize)
	ciphertext, err := crypto.SealWithPassword(shared.Secret, padded)
	if err != nil {
		return "", &CipherError{Op: "encrypt", Err: err}
	}

	out := envelope.Encode(&envelope.Envelope{
		Ciphertext:         ciphertext,
		MAC:                crypto.EnvelopeMAC(shared.Secret, crypto.ToBase64(ciphertext)),
		EphemeralPublicKey: ephemeralPoint,
	})

	h.log().DebugContext(ctx, "ecies encrypt",
		slog.String("provider", provider.Name()),
		slog.String("curve", backend.Name()),
		slog.Int("plaintext_bytes", len(plaintext)),
		slog.Int("envelope_bytes", len(out)),
	)

	return out, nil
}

// Decrypt decrypts an envelope with the recipient's private key. Trailing
// zero bytes are stripped from the result.
func (h *HybridCipher) Decrypt(ctx context.Context, recipient PrivateKeyPemBase64, data string) (string, error) {
	kp, err := decodePrivateKey(recipient)
	if err != nil {
		return "", err
	}

	env, err := envelope.Decode(data)
	if err != nil {
		return "", wrapEnvelopeError(err)
	}

	if err := kp.Curve.ValidatePoint(env.EphemeralPublicKey); err != nil {
		return "", &EnvelopeError{Field: envelope.FieldEphemeralPublicKey, Err: err}
	}

	shared, provider, err := h.computeSecret(ctx, SecretRequest{
		Curve:      curveOf(kp.Curve),
		PrivateKey: kp.Scalar,
		PublicKey:  env.EphemeralPublicKey,
	})
	if err != nil {
		return "", wrapECDHError(err)
	}

	plaintext, err := crypto.OpenWithPassword(shared.Secret, env.Ciphertext)
	if err != nil {
		return "", &DecryptionError{Stage: "cipher", Err: err}
	}

	h.log().DebugContext(ctx, "ecies decrypt",
		slog.String("provider", provider.Name()),
		slog.String("curve", kp.Curve.Name()),
		slog.Int("envelope_bytes", len(data)),
		slog.Int("plaintext_bytes", len(plaintext)),
	)

	return string(plaintext), nil
}

// computeSecret dispatches req to the provider active at call time and waits
// for it. The provider is returned for logging.
func (h *HybridCipher) computeSecret(ctx context.Context, req SecretRequest) (*SharedSecret, ECDHProvider, error) {
	pending := h.providerSlot().Dispatch(ctx, req)

	shared, err := pending.Wait(ctx)
	if err != nil {
		return nil, pending.Provider(), err
	}
	if shared == nil || len(shared.Secret) == 0 {
		return nil, pending.Provider(), errEmptySecret
	}

	return shared, pending.Provider(), nil
}

var (
	discardLogger       = slog.New(slog.DiscardHandler)
	defaultHybridCipher = NewHybridCipher()
)

// EciesEncrypt encrypts plaintext for recipient using the process-wide
// provider.
func EciesEncrypt(ctx context.Context, recipient PublicKeyPemBase64, plaintext string) (string, error) {
	return defaultHybridCipher.Encrypt(ctx, recipient, plaintext)
}

// EciesDecrypt decrypts an envelope using the process-wide provider.
func EciesDecrypt(ctx context.Context, recipient PrivateKeyPemBase64, data string) (string, error) {
	return defaultHybridCipher.Decrypt(ctx, recipient, data)
}
