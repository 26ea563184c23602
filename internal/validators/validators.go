package validators

import (
	"net"
	"regexp"
	"strings"
	"time"
)

var priceRe = regexp.MustCompile(`^\d+(\.\d{1,2})?$`)

// IsEmailDomainValid resolves the domain part of the address; a domain
// with neither MX nor A records is rejected at registration time.
func IsEmailDomainValid(email string) bool {
	at := strings.LastIndex(email, "@")
	if at < 0 || at == len(email)-1 {
		return false
	}

	domain := email[at+1:]

	if mx, err := net.LookupMX(domain); err == nil && len(mx) > 0 {
		return true
	}

	if ips, err := net.LookupIP(domain); err == nil && len(ips) > 0 {
		return true
	}

	return false
}

// IsWallClock accepts "HH:mm" values as used by availability windows.
func IsWallClock(value string) bool {
	_, err := time.Parse("15:04", value)
	return err == nil
}

// IsPrice accepts non-negative decimal strings with up to two places.
func IsPrice(value string) bool {
	return priceRe.MatchString(value)
}
