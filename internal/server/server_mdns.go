package server

import (
	"log/slog"
	"net"
	"os"
	"slices"
	"strconv"
	"strings"

	"github.com/hashicorp/mdns"
)

const mdnsService = "_sonic._tcp"

// startMDNSAdvertiser announces the dashboard on the local network. The
// returned func stops the responder.
func startMDNSAdvertiser(serverAddr, instance string) func() {
	port := listenPortFromAddr(serverAddr)
	portNum, err := strconv.Atoi(port)
	if err != nil || portNum <= 0 {
		slog.Warn("mdns advertising skipped", "addr", serverAddr)
		return func() {}
	}

	instance = mdnsInstanceName(instance)
	meta := []string{
		"name=sonic",
		"api_version=1",
		"version=" + currentVersion(),
		"theme_endpoint=/save_theme",
	}
	ips := discoverAdvertiseIPs()
	service, err := mdns.NewMDNSService(instance, mdnsService, "", "", portNum, ips, meta)
	if err != nil {
		slog.Error("mdns advertise service setup failed", "error", err)
		return func() {}
	}
	server, err := mdns.NewServer(&mdns.Config{Zone: service})
	if err != nil {
		slog.Error("mdns advertise start failed", "error", err)
		return func() {}
	}
	slog.Info("mdns advertising enabled", "service", mdnsService, "instance", instance, "port", port)

	return func() {
		server.Shutdown()
	}
}

func mdnsInstanceName(instance string) string {
	instance = strings.TrimSpace(instance)
	if instance != "" {
		return instance
	}
	host, _ := os.Hostname()
	host = strings.TrimSpace(host)
	if host == "" {
		return "sonic"
	}
	return "sonic-" + host
}

func discoverAdvertiseIPs() []net.IP {
	ifAddrs, err := net.InterfaceAddrs()
	if err != nil {
		return nil
	}
	return filterAdvertiseIPs(ifAddrs)
}

func filterAdvertiseIPs(addrs []net.Addr) []net.IP {
	if len(addrs) == 0 {
		return nil
	}
	seen := map[string]struct{}{}
	out := make([]net.IP, 0, len(addrs))
	for _, addr := range addrs {
		if addr == nil {
			continue
		}
		ipNet, ok := addr.(*net.IPNet)
		if !ok || ipNet == nil || ipNet.IP == nil {
			continue
		}
		ip := ipNet.IP
		if ip.IsLoopback() || ip.IsUnspecified() {
			continue
		}
		if ip.IsLinkLocalUnicast() || ip.IsLinkLocalMulticast() {
			continue
		}
		normalized := ip.To16()
		if normalized == nil {
			continue
		}
		key := normalized.String()
		if _, exists := seen[key]; exists {
			continue
		}
		seen[key] = struct{}{}
		out = append(out, normalized)
	}
	if len(out) == 0 {
		return nil
	}
	slices.SortFunc(out, func(a, b net.IP) int {
		a4, b4 := a.To4() != nil, b.To4() != nil
		if a4 != b4 {
			if a4 {
				return -1
			}
			return 1
		}
		return strings.Compare(a.String(), b.String())
	})
	return out
}

func listenPortFromAddr(addr string) string {
	addr = strings.TrimSpace(addr)
	if addr == "" {
		return "5001"
	}
	if strings.HasPrefix(addr, ":") {
		return strings.TrimPrefix(addr, ":")
	}
	if strings.Count(addr, ":") == 0 {
		return addr
	}
	_, p, err := net.SplitHostPort(addr)
	if err != nil {
		return ""
	}
	return p
}
