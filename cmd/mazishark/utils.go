package main

import (
	"strconv"
	"strings"
)

// splitAddr parses "host:port" (or ":port") into its parts, keeping the
// fallback port when the port half is absent or unparseable.
func splitAddr(addr string, fallbackPort int) (host string, port int) {
	host, port = addr, fallbackPort
	i := strings.LastIndex(addr, ":")
	if i < 0 {
		return host, port
	}
	host = addr[:i]
	if p, err := strconv.Atoi(addr[i+1:]); err == nil {
		port = p
	}
	return host, port
}
