package mailer

import (
	"bytes"
	"context"
	"crypto/tls"
	"errors"
	"fmt"
	"io"
	"net"
	"net/smtp"
	"strconv"
	"strings"
	"time"

	"github.com/sanparkangkor/sanpark-tours-api/config"
)

// Dialer abstracts net.Dialer to simplify testing.
type Dialer interface {
	DialContext(ctx context.Context, network, address string) (net.Conn, error)
}

// SMTPSender implements Sender against a real SMTP backend with STARTTLS and
// PLAIN auth. One instance serves the whole process.
type SMTPSender struct {
	host      string
	port      int
	auth      smtp.Auth
	tlsConfig *tls.Config
	dialer    Dialer
	helloName string
}

// SMTPOption configures the behaviour of the SMTP sender.
type SMTPOption func(*SMTPSender)

// WithDialer swaps the network dialer used to establish SMTP connections.
func WithDialer(d Dialer) SMTPOption {
	return func(s *SMTPSender) {
		if d != nil {
			s.dialer = d
		}
	}
}

// WithTLSConfig overrides the TLS configuration used when negotiating STARTTLS.
func WithTLSConfig(cfg *tls.Config) SMTPOption {
	return func(s *SMTPSender) {
		s.tlsConfig = cfg
	}
}

// NewSMTPSender constructs the process-wide SMTP transport from configuration.
func NewSMTPSender(cfg config.MailConfig, opts ...SMTPOption) (*SMTPSender, error) {
	if strings.TrimSpace(cfg.Host) == "" {
		return nil, errors.New("smtp: host is required")
	}
	if cfg.Port <= 0 || cfg.Port > 65535 {
		return nil, fmt.Errorf("smtp: invalid port %d", cfg.Port)
	}

	s := &SMTPSender{
		host:      cfg.Host,
		port:      cfg.Port,
		dialer:    &net.Dialer{Timeout: 30 * time.Second},
		helloName: "localhost",
		tlsConfig: &tls.Config{
			ServerName: cfg.Host,
			MinVersion: tls.VersionTLS12,
		},
	}

	if strings.TrimSpace(cfg.Username) != "" {
		s.auth = smtp.PlainAuth("", cfg.Username, cfg.Password, cfg.Host)
	}

	for _, opt := range opts {
		if opt != nil {
			opt(s)
		}
	}

	return s, nil
}

// Send delivers one envelope. The context bounds the whole SMTP conversation.
func (s *SMTPSender) Send(ctx context.Context, env Envelope) error {
	from := strings.TrimSpace(env.From)
	if from == "" {
		return errors.New("smtp: from address is required")
	}
	to := strings.TrimSpace(env.To)
	if to == "" {
		return errors.New("smtp: recipient is required")
	}

	message := buildMessage(env)
	return s.deliver(ctx, from, to, message)
}

// Verify dials the server and completes the EHLO handshake without sending
// anything. Used as a startup reachability probe.
func (s *SMTPSender) Verify(ctx context.Context) error {
	client, cleanup, err := s.connect(ctx)
	if err != nil {
		return err
	}
	defer cleanup()

	if err := client.Quit(); err != nil && !errors.Is(err, io.EOF) {
		return fmt.Errorf("smtp: quit: %w", err)
	}
	return nil
}

func (s *SMTPSender) deliver(ctx context.Context, from, to string, message []byte) error {
	client, cleanup, err := s.connect(ctx)
	if err != nil {
		return err
	}
	defer cleanup()

	if err := client.Mail(from); err != nil {
		return fmt.Errorf("smtp: mail from: %w", err)
	}
	if err := client.Rcpt(to); err != nil {
		return fmt.Errorf("smtp: rcpt to %s: %w", to, err)
	}

	writer, err := client.Data()
	if err != nil {
		return fmt.Errorf("smtp: data: %w", err)
	}
	if _, err := writer.Write(message); err != nil {
		_ = writer.Close()
		return fmt.Errorf("smtp: data write: %w", err)
	}
	if err := writer.Close(); err != nil {
		return fmt.Errorf("smtp: data close: %w", err)
	}

	if err := client.Quit(); err != nil && !errors.Is(err, io.EOF) {
		return fmt.Errorf("smtp: quit: %w", err)
	}

	return ctx.Err()
}

// connect dials the server and runs EHLO, STARTTLS, and AUTH. The returned
// cleanup closes the connection and stops the context watchdog.
func (s *SMTPSender) connect(ctx context.Context) (*smtp.Client, func(), error) {
	if err := ctx.Err(); err != nil {
		return nil, nil, err
	}

	addr := net.JoinHostPort(s.host, strconv.Itoa(s.port))
	conn, err := s.dialer.DialContext(ctx, "tcp", addr)
	if err != nil {
		return nil, nil, fmt.Errorf("smtp: dial: %w", err)
	}

	if deadline, ok := ctx.Deadline(); ok {
		_ = conn.SetDeadline(deadline)
	}

	// net/smtp is not context-aware; close the conn if the context expires
	done := make(chan struct{})
	go func() {
		select {
		case <-ctx.Done():
			_ = conn.Close()
		case <-done:
		}
	}()

	client, err := smtp.NewClient(conn, s.host)
	if err != nil {
		close(done)
		_ = conn.Close()
		return nil, nil, fmt.Errorf("smtp: new client: %w", err)
	}

	cleanup := func() {
		close(done)
		_ = client.Close()
	}

	if err := client.Hello(s.helloName); err != nil {
		cleanup()
		return nil, nil, fmt.Errorf("smtp: hello: %w", err)
	}

	if s.tlsConfig != nil {
		if ok, _ := client.Extension("STARTTLS"); ok {
			if err := client.StartTLS(s.tlsConfig.Clone()); err != nil {
				cleanup()
				return nil, nil, fmt.Errorf("smtp: starttls: %w", err)
			}
		}
	}

	if s.auth != nil {
		if ok, _ := client.Extension("AUTH"); ok {
			if err := client.Auth(s.auth); err != nil {
				cleanup()
				return nil, nil, fmt.Errorf("smtp: auth: %w", err)
			}
		}
	}

	return client, cleanup, nil
}

func buildMessage(env Envelope) []byte {
	var buf bytes.Buffer
	writeHeader(&buf, "From", env.From)
	writeHeader(&buf, "To", env.To)
	writeHeader(&buf, "Subject", env.Subject)
	writeHeader(&buf, "Date", time.Now().UTC().Format(time.RFC1123Z))
	writeHeader(&buf, "MIME-Version", "1.0")
	writeHeader(&buf, "Content-Type", "text/html; charset=UTF-8")
	buf.WriteString("\r\n")
	buf.WriteString(normalizeBody(env.HTMLBody))
	return buf.Bytes()
}

// writeHeader emits one header line with CR/LF stripped from the value so a
// crafted subject cannot inject additional headers.
func writeHeader(buf *bytes.Buffer, key, value string) {
	buf.WriteString(key)
	buf.WriteString(": ")
	buf.WriteString(sanitizeHeaderValue(value))
	buf.WriteString("\r\n")
}

func sanitizeHeaderValue(value string) string {
	clean := strings.ReplaceAll(value, "\r", " ")
	clean = strings.ReplaceAll(clean, "\n", " ")
	return strings.TrimSpace(clean)
}

func normalizeBody(body string) string {
	if body == "" {
		return ""
	}
	normalized := strings.ReplaceAll(body, "\r\n", "\n")
	normalized = strings.ReplaceAll(normalized, "\r", "\n")
	return strings.ReplaceAll(normalized, "\n", "\r\n")
}
