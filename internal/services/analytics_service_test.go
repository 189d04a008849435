// internal/services/analytics_service_test.go
package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

const (
	uaChromeWindows = "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/126.0.0.0 Safari/537.36"
	uaSafariIPhone  = "Mozilla/5.0 (iPhone; CPU iPhone OS 17_5 like Mac OS X) AppleWebKit/605.1.15 (KHTML, like Gecko) Version/17.5 Mobile/15E148 Safari/604.1"
	uaSafariIPad    = "Mozilla/5.0 (iPad; CPU OS 17_5 like Mac OS X) AppleWebKit/605.1.15 (KHTML, like Gecko) Version/17.5 Mobile/15E148 Safari/604.1"
	uaChromeAndroid = "Mozilla/5.0 (Linux; Android 14; Pixel 8) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/126.0.0.0 Mobile Safari/537.36"
	uaFirefoxLinux  = "Mozilla/5.0 (X11; Linux x86_64; rv:127.0) Gecko/20100101 Firefox/127.0"
	uaEdgeWindows   = "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/126.0.0.0 Safari/537.36 Edge/126.0.0.0"
	uaSafariMac     = "Mozilla/5.0 (Macintosh; Intel Mac OS X 10_15_7) AppleWebKit/605.1.15 (KHTML, like Gecko) Version/17.5 Safari/605.1.15"
)

func TestDetectDevice(t *testing.T) {
	assert.Equal(t, "desktop", DetectDevice(uaChromeWindows))
	assert.Equal(t, "mobile", DetectDevice(uaSafariIPhone))
	assert.Equal(t, "mobile", DetectDevice(uaChromeAndroid))
	assert.Equal(t, "tablet", DetectDevice(uaSafariIPad))
	assert.Equal(t, "desktop", DetectDevice(""))
}

func TestDetectBrowser(t *testing.T) {
	assert.Equal(t, "Chrome", DetectBrowser(uaChromeWindows))
	assert.Equal(t, "Safari", DetectBrowser(uaSafariIPhone))
	assert.Equal(t, "Firefox", DetectBrowser(uaFirefoxLinux))
	assert.Equal(t, "Edge", DetectBrowser(uaEdgeWindows))
	assert.Equal(t, "Other", DetectBrowser("curl/8.5.0"))
}

func TestDetectOS(t *testing.T) {
	assert.Equal(t, "Windows", DetectOS(uaChromeWindows))
	assert.Equal(t, "iOS", DetectOS(uaSafariIPhone))
	assert.Equal(t, "iOS", DetectOS(uaSafariIPad))
	assert.Equal(t, "Android", DetectOS(uaChromeAndroid))
	assert.Equal(t, "Linux", DetectOS(uaFirefoxLinux))
	assert.Equal(t, "macOS", DetectOS(uaSafariMac))
	assert.Equal(t, "Other", DetectOS("curl/8.5.0"))
}

func TestIsPublicIP(t *testing.T) {
	assert.True(t, IsPublicIP("8.8.8.8"))
	assert.True(t, IsPublicIP("185.45.20.10"))
	assert.False(t, IsPublicIP("127.0.0.1"))
	assert.False(t, IsPublicIP("::1"))
	assert.False(t, IsPublicIP("10.0.0.5"))
	assert.False(t, IsPublicIP("192.168.1.10"))
	assert.False(t, IsPublicIP("0.0.0.0"))
	assert.False(t, IsPublicIP("not-an-ip"))
	assert.False(t, IsPublicIP(""))
}
