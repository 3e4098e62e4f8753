package botdetect

import "testing"

func TestIsSearchBot(t *testing.T) {
	tests := []struct {
		name string
		ua   string
		want bool
	}{
		{"googlebot", "Mozilla/5.0 (compatible; Googlebot/2.1; +http://www.google.com/bot.html)", true},
		{"googlebot smartphone", "Mozilla/5.0 (Linux; Android 6.0.1; Nexus 5X Build/MMB29P) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/125.0.6422.175 Mobile Safari/537.36 (compatible; Googlebot/2.1; +http://www.google.com/bot.html)", true},
		{"bingbot", "Mozilla/5.0 (compatible; bingbot/2.0; +http://www.bing.com/bingbot.htm)", true},
		{"yandex", "Mozilla/5.0 (compatible; YandexBot/3.0; +http://yandex.com/bots)", true},
		{"gptbot", "Mozilla/5.0 AppleWebKit/537.36 (KHTML, like Gecko); compatible; GPTBot/1.0; +https://openai.com/gptbot", true},
		{"claudebot", "Mozilla/5.0 (compatible; ClaudeBot/1.0; +claudebot@anthropic.com)", true},
		{"perplexity", "Mozilla/5.0 (compatible; PerplexityBot/1.0; +https://perplexity.ai/perplexitybot)", true},
		{"telegram preview", "TelegramBot (like TwitterBot)", true},
		{"whatsapp preview", "WhatsApp/2.23.20.0", true},
		{"mixed case", "MOZILLA/5.0 (COMPATIBLE; GOOGLEBOT/2.1)", true},
		{"chrome desktop", "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/126.0.0.0 Safari/537.36", false},
		{"firefox", "Mozilla/5.0 (X11; Linux x86_64; rv:127.0) Gecko/20100101 Firefox/127.0", false},
		{"safari ios", "Mozilla/5.0 (iPhone; CPU iPhone OS 17_5 like Mac OS X) AppleWebKit/605.1.15 (KHTML, like Gecko) Version/17.5 Mobile/15E148 Safari/604.1", false},
		{"empty", "", false},
		{"curl", "curl/8.4.0", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := IsSearchBot(tt.ua); got != tt.want {
				t.Errorf("IsSearchBot(%q) = %v, want %v", tt.ua, got, tt.want)
			}
		})
	}
}

const (
	googlebotUA = "Mozilla/5.0 (compatible; Googlebot/2.1; +http://www.google.com/bot.html)"
	chromeUA    = "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/126.0.0.0 Safari/537.36"
)

func TestShouldReturnSSR(t *testing.T) {
	tests := []struct {
		name string
		path string
		ua   string
		want bool
	}{
		{"bot on landing", "/", googlebotUA, true},
		{"bot on gallery", "/gallery", googlebotUA, true},
		{"bot on page slug", "/anna-beauty", googlebotUA, true},
		{"bot on dashboard", "/dashboard", googlebotUA, false},
		{"bot on login", "/login", googlebotUA, false},
		{"bot on api path", "/api", googlebotUA, false},
		{"bot on nested path", "/anna/photos", googlebotUA, false},
		{"bot on uppercase slug", "/Anna", googlebotUA, false},
		{"bot on health", "/health", googlebotUA, false},
		{"bot on static asset", "/static", googlebotUA, false},
		{"browser on landing", "/", chromeUA, false},
		{"browser on page slug", "/anna-beauty", chromeUA, false},
		{"empty agent on slug", "/anna-beauty", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ShouldReturnSSR(tt.path, tt.ua); got != tt.want {
				t.Errorf("ShouldReturnSSR(%q, bot=%v) = %v, want %v",
					tt.path, IsSearchBot(tt.ua), got, tt.want)
			}
		})
	}
}
