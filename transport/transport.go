// Package transport builds HTTP clients that route provider traffic through a
// configured proxy.
package transport

import (
	"context"
	"net"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/ZaguanLabs/gotrans"
	"golang.org/x/net/proxy"
)

// DefaultTimeout is used when Build receives a non-positive timeout.
const DefaultTimeout = 5 * time.Second

// DefaultSocksPort is used for a socks proxy URL without a port.
const DefaultSocksPort = "1080"

// Build returns an HTTP client that sends all traffic, plain and TLS, through
// proxyURL and gives up after timeout.
//
// An empty proxyURL yields a direct client; proxy environment variables are
// ignored. Supported schemes are http, https and socks (socks, socks5, socks5h);
// a socks URL without a port uses DefaultSocksPort.
// Any other scheme is a *gotrans.ConfigurationError naming the URL.
func Build(proxyURL string, timeout time.Duration) (*http.Client, error) {
	if timeout <= 0 {
		timeout = DefaultTimeout
	}

	dialer := &net.Dialer{Timeout: timeout, KeepAlive: 30 * time.Second}

	tr := http.DefaultTransport.(*http.Transport).Clone()
	tr.Proxy = nil
	tr.DialContext = dialer.DialContext
	tr.TLSHandshakeTimeout = timeout

	if proxyURL = strings.TrimSpace(proxyURL); proxyURL != "" {
		if err := applyProxy(tr, dialer, proxyURL); err != nil {
			return nil, err
		}
	}

	return &http.Client{
		Transport: tr,
		Timeout:   timeout,
	}, nil
}

func applyProxy(tr *http.Transport, dialer *net.Dialer, proxyURL string) error {
	parsed, err := url.Parse(rewriteLocalhost(proxyURL))
	if err != nil {
		return &gotrans.ConfigurationError{Message: "invalid proxy URL", Value: proxyURL, Cause: err}
	}
	if parsed.Host == "" {
		return &gotrans.ConfigurationError{Message: "proxy URL has no host", Value: proxyURL}
	}

	switch strings.ToLower(parsed.Scheme) {
	case "http", "https":
		tr.Proxy = http.ProxyURL(parsed)
		return nil

	case "socks", "socks5", "socks5h":
		var auth *proxy.Auth
		if parsed.User != nil {
			password, _ := parsed.User.Password()
			auth = &proxy.Auth{User: parsed.User.Username(), Password: password}
		}

		d, err := proxy.SOCKS5("tcp", socksAddr(parsed), auth, dialer)
		if err != nil {
			return &gotrans.ConfigurationError{Message: "invalid socks proxy", Value: proxyURL, Cause: err}
		}
		tr.DialContext = contextDialer(d)
		return nil

	default:
		return &gotrans.ConfigurationError{Message: "unsupported proxy scheme", Value: proxyURL}
	}
}

func socksAddr(u *url.URL) string {
	if u.Port() != "" {
		return u.Host
	}
	return net.JoinHostPort(u.Hostname(), DefaultSocksPort)
}

// rewriteLocalhost replaces a localhost proxy host with the loopback literal;
// some proxies resolve localhost to ::1 while listening on IPv4 only.
func rewriteLocalhost(raw string) string {
	i := strings.Index(raw, "://")
	if i < 0 {
		return raw
	}

	rest := raw[i+3:]
	hostStart := 0
	if at := strings.LastIndex(strings.SplitN(rest, "/", 2)[0], "@"); at >= 0 {
		hostStart = at + 1
	}

	host := rest[hostStart:]
	if !strings.HasPrefix(strings.ToLower(host), "localhost") {
		return raw
	}
	tail := host[len("localhost"):]
	if tail != "" && tail[0] != ':' && tail[0] != '/' {
		// e.g. localhost.example.com
		return raw
	}

	return raw[:i+3] + rest[:hostStart] + "127.0.0.1" + tail
}

func contextDialer(d proxy.Dialer) func(ctx context.Context, network, addr string) (net.Conn, error) {
	if cd, ok := d.(proxy.ContextDialer); ok {
		return cd.DialContext
	}
	return func(ctx context.Context, network, addr string) (net.Conn, error) {
		return d.Dial(network, addr)
	}
}
