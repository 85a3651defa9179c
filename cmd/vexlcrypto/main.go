package main

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"log/slog"
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"

	vexlcrypto "github.com/vexl-it/vexl-crypto-go"
)

const usage = "usage: vexlcrypto <keygen|pubkey|encrypt|decrypt|aes-encrypt|aes-decrypt|sign|verify|hmac|selftest> [args]"

// Environment variables read by the CLI.
const (
	envCurve          = "VEXLCRYPTO_CURVE"
	envProvider       = "VEXLCRYPTO_ECDH_PROVIDER"
	envSimulatedDelay = "VEXLCRYPTO_SIMULATED_DELAY"
	envLogLevel       = "VEXLCRYPTO_LOG_LEVEL"
	envLogFormat      = "VEXLCRYPTO_LOG_FORMAT"
)

// Config holds the process resources a command runs against.
type Config struct {
	Stdin  io.Reader
	Stdout io.Writer
	Stderr io.Writer

	// Getenv looks up environment variables. Nil means os.Getenv.
	Getenv func(string) string
	// EnvFile is an optional dotenv file. Values already present in the
	// environment take precedence. A missing file is ignored.
	EnvFile string
	// Timeout bounds the whole command. Zero means no timeout.
	Timeout time.Duration
}

// DefaultConfig returns a Config wired to the process.
func DefaultConfig() *Config {
	return &Config{
		Stdin:   os.Stdin,
		Stdout:  os.Stdout,
		Stderr:  os.Stderr,
		Getenv:  os.Getenv,
		EnvFile: ".env",
		Timeout: 60 * time.Second,
	}
}

// Settings is the CLI configuration resolved from the environment.
type Settings struct {
	Curve          vexlcrypto.Curve
	Provider       string
	SimulatedDelay time.Duration
	LogLevel       slog.Level
	LogFormat      string
}

// loadSettings resolves Settings from the environment and the optional
// dotenv file.
func loadSettings(cfg *Config) (*Settings, error) {
	getenv := cfg.Getenv
	if getenv == nil {
		getenv = os.Getenv
	}

	fileEnv := map[string]string{}
	if cfg.EnvFile != "" {
		m, err := godotenv.Read(cfg.EnvFile)
		switch {
		case err == nil:
			fileEnv = m
		case errors.Is(err, fs.ErrNotExist):
		default:
			return nil, fmt.Errorf("read %s: %w", cfg.EnvFile, err)
		}
	}

	lookup := func(key string) string {
		if v := getenv(key); v != "" {
			return v
		}
		return fileEnv[key]
	}

	s := &Settings{
		Curve:     vexlcrypto.DefaultCurve,
		Provider:  "native",
		LogLevel:  slog.LevelWarn,
		LogFormat: "text",
	}

	if v := lookup(envCurve); v != "" {
		c, err := vexlcrypto.NormalizeCurve(v)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", envCurve, err)
		}
		s.Curve = c
	}

	if v := lookup(envProvider); v != "" {
		switch v {
		case "native", "simulated":
			s.Provider = v
		default:
			return nil, fmt.Errorf("%s: unknown provider %q", envProvider, v)
		}
	}

	if v := lookup(envSimulatedDelay); v != "" {
		d, err := time.ParseDuration(v)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", envSimulatedDelay, err)
		}
		s.SimulatedDelay = d
	}

	if v := lookup(envLogLevel); v != "" {
		if err := s.LogLevel.UnmarshalText([]byte(v)); err != nil {
			return nil, fmt.Errorf("%s: %w", envLogLevel, err)
		}
	}

	if v := lookup(envLogFormat); v != "" {
		switch v {
		case "text", "json":
			s.LogFormat = v
		default:
			return nil, fmt.Errorf("%s: unknown format %q", envLogFormat, v)
		}
	}

	return s, nil
}

func newLogger(w io.Writer, s *Settings) *slog.Logger {
	opts := &slog.HandlerOptions{Level: s.LogLevel}
	if s.LogFormat == "json" {
		return slog.New(slog.NewJSONHandler(w, opts))
	}
	return slog.New(slog.NewTextHandler(w, opts))
}

func newProvider(s *Settings) vexlcrypto.ECDHProvider {
	if s.Provider == "simulated" {
		return vexlcrypto.SimulatedProvider{Delay: s.SimulatedDelay}
	}
	return vexlcrypto.NativeProvider{}
}

// app bundles what every command needs.
type app struct {
	cfg      *Config
	settings *Settings
	logger   *slog.Logger
	cipher   *vexlcrypto.HybridCipher
}

func run(args []string, cfg *Config) error {
	if len(args) < 2 {
		return errors.New(usage)
	}

	settings, err := loadSettings(cfg)
	if err != nil {
		return fmt.Errorf("load settings: %w", err)
	}

	stderr := cfg.Stderr
	if stderr == nil {
		stderr = io.Discard
	}
	logger := newLogger(stderr, settings)

	a := &app{
		cfg:      cfg,
		settings: settings,
		logger:   logger,
		cipher: vexlcrypto.NewHybridCipher(
			vexlcrypto.WithProvider(newProvider(settings)),
			vexlcrypto.WithLogger(logger),
		),
	}

	ctx := context.Background()
	if cfg.Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, cfg.Timeout)
		defer cancel()
	}

	cmd, rest := args[1], args[2:]
	logger.Debug("running command", slog.String("command", cmd), slog.String("provider", settings.Provider))

	switch cmd {
	case "keygen":
		return a.keygen(rest)
	case "pubkey":
		return a.pubkey()
	case "encrypt":
		return a.encrypt(ctx, rest)
	case "decrypt":
		return a.decrypt(ctx, rest)
	case "aes-encrypt":
		return a.aesEncrypt(rest)
	case "aes-decrypt":
		return a.aesDecrypt(rest)
	case "sign":
		return a.sign(rest)
	case "verify":
		return a.verify(rest)
	case "hmac":
		return a.hmac(rest)
	case "selftest":
		return a.selftest(ctx)
	default:
		return fmt.Errorf("unknown command: %s", cmd)
	}
}

// KeyPairOutput is the JSON form of a key pair.
type KeyPairOutput struct {
	Curve      string `json:"curve"`
	PrivateKey string `json:"privateKey"`
	PublicKey  string `json:"publicKey"`
}

func (a *app) keygen(args []string) error {
	c := a.settings.Curve
	if len(args) > 0 {
		var err error
		if c, err = vexlcrypto.NormalizeCurve(args[0]); err != nil {
			return fmt.Errorf("keygen: %w", err)
		}
	}

	kp, err := vexlcrypto.GenerateKeyPairOnCurve(c)
	if err != nil {
		return fmt.Errorf("keygen: %w", err)
	}

	return a.write(KeyPairOutput{
		Curve:      kp.Curve.String(),
		PrivateKey: string(kp.PrivateKey),
		PublicKey:  string(kp.PublicKey),
	})
}

func (a *app) pubkey() error {
	priv, err := a.readInput()
	if err != nil {
		return err
	}

	kp, err := vexlcrypto.ImportPrivateKey(vexlcrypto.PrivateKeyPemBase64(strings.TrimSpace(priv)))
	if err != nil {
		return fmt.Errorf("import private key: %w", err)
	}

	return a.write(KeyPairOutput{
		Curve:      kp.Curve.String(),
		PrivateKey: string(kp.PrivateKey),
		PublicKey:  string(kp.PublicKey),
	})
}

// ResultOutput is the JSON form of a single string result.
type ResultOutput struct {
	Result string `json:"result"`
}

func (a *app) encrypt(ctx context.Context, args []string) error {
	if len(args) < 1 {
		return errors.New("usage: vexlcrypto encrypt <publicKey>")
	}

	plaintext, err := a.readInput()
	if err != nil {
		return err
	}

	out, err := a.cipher.Encrypt(ctx, vexlcrypto.PublicKeyPemBase64(args[0]), plaintext)
	if err != nil {
		return fmt.Errorf("encrypt: %w", err)
	}
	return a.write(ResultOutput{Result: out})
}

func (a *app) decrypt(ctx context.Context, args []string) error {
	if len(args) < 1 {
		return errors.New("usage: vexlcrypto decrypt <privateKey>")
	}

	data, err := a.readInput()
	if err != nil {
		return err
	}

	out, err := a.cipher.Decrypt(ctx, vexlcrypto.PrivateKeyPemBase64(args[0]), strings.TrimSpace(data))
	if err != nil {
		return fmt.Errorf("decrypt: %w", err)
	}
	return a.write(ResultOutput{Result: out})
}

func (a *app) aesEncrypt(args []string) error {
	if len(args) < 1 {
		return errors.New("usage: vexlcrypto aes-encrypt <password>")
	}

	data, err := a.readInput()
	if err != nil {
		return err
	}

	out, err := vexlcrypto.AESGCMIgnoreTagEncrypt(data, args[0])
	if err != nil {
		return fmt.Errorf("aes-encrypt: %w", err)
	}
	return a.write(ResultOutput{Result: out})
}

func (a *app) aesDecrypt(args []string) error {
	if len(args) < 1 {
		return errors.New("usage: vexlcrypto aes-decrypt <password>")
	}

	data, err := a.readInput()
	if err != nil {
		return err
	}

	out, err := vexlcrypto.AESGCMIgnoreTagDecrypt(strings.TrimSpace(data), args[0])
	if err != nil {
		return fmt.Errorf("aes-decrypt: %w", err)
	}
	return a.write(ResultOutput{Result: out})
}

func (a *app) sign(args []string) error {
	if len(args) < 2 {
		return errors.New("usage: vexlcrypto sign <privateKey> <challenge>")
	}

	kp, err := vexlcrypto.ImportPrivateKey(vexlcrypto.PrivateKeyPemBase64(args[0]))
	if err != nil {
		return fmt.Errorf("import private key: %w", err)
	}

	sig, err := vexlcrypto.ECDSASign(kp, args[1])
	if err != nil {
		return fmt.Errorf("sign: %w", err)
	}
	return a.write(ResultOutput{Result: sig})
}

// VerifyOutput is the JSON form of a verification result.
type VerifyOutput struct {
	Valid bool `json:"valid"`
}

func (a *app) verify(args []string) error {
	if len(args) < 3 {
		return errors.New("usage: vexlcrypto verify <publicKey> <challenge> <signature>")
	}

	ok, err := vexlcrypto.ECDSAVerify(vexlcrypto.PublicKeyPemBase64(args[0]), args[1], args[2])
	if err != nil {
		return fmt.Errorf("verify: %w", err)
	}
	return a.write(VerifyOutput{Valid: ok})
}

func (a *app) hmac(args []string) error {
	if len(args) < 1 {
		return errors.New("usage: vexlcrypto hmac <password>")
	}

	data, err := a.readInput()
	if err != nil {
		return err
	}
	return a.write(ResultOutput{Result: vexlcrypto.HMACSign(data, args[0])})
}

func (a *app) readInput() (string, error) {
	if a.cfg.Stdin == nil {
		return "", errors.New("read stdin: no input")
	}
	data, err := io.ReadAll(a.cfg.Stdin)
	if err != nil {
		return "", fmt.Errorf("read stdin: %w", err)
	}
	return string(data), nil
}

func (a *app) write(v any) error {
	if err := json.NewEncoder(a.cfg.Stdout).Encode(v); err != nil {
		return fmt.Errorf("encode output: %w", err)
	}
	return nil
}

func fatal(format string, args ...any) {
	fmt.Fprintf(os.Stderr, format+"\n", args...)
	os.Exit(1)
}
