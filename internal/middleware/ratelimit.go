package middleware

import (
	"fmt"
	"net"
	"net/http"
	"strconv"
	"strings"
	"sync"
	"time"

	"gamestore/internal/logger"
	"gamestore/internal/utils/helpers"

	"go.uber.org/zap"
	"golang.org/x/time/rate"
)

type multiLimiter struct {
	mu        sync.Mutex
	limit     rate.Limit
	burst     int
	ttl       time.Duration
	now       func() time.Time
	lastSweep time.Time
	entries   map[string]*limBucket
}

type limBucket struct {
	lim      *rate.Limiter
	lastSeen time.Time
}

func newMultiLimiter(limit rate.Limit, burst int, ttl time.Duration) *multiLimiter {
	return &multiLimiter{
		limit:   limit,
		burst:   burst,
		ttl:     ttl,
		now:     time.Now,
		entries: make(map[string]*limBucket),
	}
}

func (m *multiLimiter) allow(key string) bool {
	now := m.now()
	m.mu.Lock()
	defer m.mu.Unlock()
	b := m.entries[key]
	if b == nil {
		b = &limBucket{lim: rate.NewLimiter(m.limit, m.burst)}
		m.entries[key] = b
	}
	b.lastSeen = now

	// чистим простаивающие ключи не чаще раза в ttl
	if now.Sub(m.lastSweep) >= m.ttl {
		for k, v := range m.entries {
			if now.Sub(v.lastSeen) > m.ttl {
				delete(m.entries, k)
			}
		}
		m.lastSweep = now
	}
	return b.lim.AllowN(now, 1)
}

// TrustedProxies - сети прокси, которым разрешено передавать X-Forwarded-For.
type TrustedProxies []*net.IPNet

// ParseTrustedProxies разбирает список IP и CIDR ("10.0.0.1", "10.0.0.0/8").
func ParseTrustedProxies(items []string) (TrustedProxies, error) {
	var out TrustedProxies
	for _, raw := range items {
		s := strings.TrimSpace(raw)
		if s == "" {
			continue
		}
		if !strings.Contains(s, "/") {
			ip := net.ParseIP(s)
			if ip == nil {
				return nil, fmt.Errorf("invalid trusted proxy %q", s)
			}
			bits := 8 * net.IPv4len
			if ip.To4() == nil {
				bits = 8 * net.IPv6len
			}
			out = append(out, &net.IPNet{IP: ip, Mask: net.CIDRMask(bits, bits)})
			continue
		}
		_, n, err := net.ParseCIDR(s)
		if err != nil {
			return nil, fmt.Errorf("invalid trusted proxy %q: %w", s, err)
		}
		out = append(out, n)
	}
	return out, nil
}

func (t TrustedProxies) contains(ip net.IP) bool {
	for _, n := range t {
		if n.Contains(ip) {
			return true
		}
	}
	return false
}

// RateLimit ограничивает число запросов с одного IP: n запросов за period.
// n <= 0 отключает ограничение.
func RateLimit(n int, period time.Duration, trusted TrustedProxies) func(http.Handler) http.Handler {
	if n <= 0 {
		return func(next http.Handler) http.Handler { return next }
	}
	ml := newMultiLimiter(rate.Every(period/time.Duration(n)), n, 2*period)
	retry := strconv.Itoa(int((period / time.Duration(n)).Seconds()) + 1)
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ip := getClientIP(r, trusted)
			if !ml.allow(ip) {
				logger.WithCtx(r.Context()).Warn("Превышен лимит запросов", zap.String("ip", ip), zap.String("path", r.URL.Path))
				w.Header().Set("Retry-After", retry)
				helpers.Error(w, http.StatusTooManyRequests, "too many requests")
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}

// getClientIP берёт адрес соединения. X-Forwarded-For учитывается, только
// если соединение пришло от доверенного прокси: тогда идём по цепочке справа
// налево и возвращаем первый адрес, который не является доверенным прокси.
func getClientIP(r *http.Request, trusted TrustedProxies) string {
	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil || host == "" {
		host = r.RemoteAddr
	}
	peer := net.ParseIP(host)
	if peer == nil || !trusted.contains(peer) {
		return host
	}

	client := host
	hops := strings.Split(r.Header.Get("X-Forwarded-For"), ",")
	for i := len(hops) - 1; i >= 0; i-- {
		ip := net.ParseIP(strings.TrimSpace(hops[i]))
		if ip == nil {
			// мусор в цепочке: дальше влево доверять нельзя
			break
		}
		client = ip.String()
		if !trusted.contains(ip) {
			break
		}
	}
	return client
}
