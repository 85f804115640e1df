package ban

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"net/http"
	"net/smtp"
	"os"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/glowcosmetics/storefront/internal/redissvc"
)

var (
	alertFrom        = os.Getenv("ALERT_FROM")
	alertTo          = os.Getenv("ALERT_TO")
	smtpServer       = os.Getenv("SMTP_SERVER")
	smtpPort         = os.Getenv("SMTP_PORT")
	smtpUser         = os.Getenv("SMTP_USER")
	smtpPassword     = os.Getenv("SMTP_PASS")
	smtpAuthDisabled = os.Getenv("SMTP_AUTH_DISABLED")

	rdb *redis.Client
	ctx context.Context
)

func SetRedisService(rs *redissvc.RedisService) {
	rdb = rs.Rdb()
	ctx = rs.Ctx()
}

// StrikeThreshold is how many rate-limit rejections a client accumulates
// before a ban event is logged and the alert email goes out.
const StrikeThreshold = 10

const (
	strikeKeyPrefix = "ratelimit:strikes:"
	DailyBanLogKey  = "ratelimit:banlog:daily"
)

// RegisterStrike counts one rate-limit rejection for the client. Strike
// counters expire after an hour. Without Redis this is a no-op.
func RegisterStrike(target, route string, r *http.Request) error {
	if rdb == nil {
		return nil
	}

	strikes, err := rdb.Incr(ctx, strikeKeyPrefix+target).Result()
	if err != nil {
		return err
	}
	rdb.Expire(ctx, strikeKeyPrefix+target, time.Hour)

	if strikes == StrikeThreshold {
		return SendBanAlertEmail(target, route, int(strikes), r)
	}
	return nil
}

func SendBanAlertEmail(bannedID string, route string, strikes int, r *http.Request) error {
	subject := fmt.Sprintf("BAN ALERT: %s blocked", bannedID)
	body := fmt.Sprintf("Target: %s\nRoute: %s\nStrikes: %d\nTime: %s", bannedID, route, strikes, time.Now().Format(time.RFC3339))

	msg := fmt.Sprintf("From: %s\r\nTo: %s\r\nSubject: %s\r\n\r\n%s", alertFrom, alertTo, subject, body)

	addr := fmt.Sprintf("%s:%s", smtpServer, smtpPort)
	auth := smtp.PlainAuth("", smtpUser, smtpPassword, smtpServer)

	if smtpAuthDisabled != "" {
		auth = nil
	}

	go func() {
		err := smtp.SendMail(addr, auth, alertFrom, []string{alertTo}, []byte(msg))
		if err != nil {
			log.Printf("Failed to send alert email: %v\n", err)
		}
	}()

	logBanEvent(bannedID, route, strikes)

	return nil
}

type BanLogEntry struct {
	Target  string    `json:"target"`
	Route   string    `json:"route"`
	Strikes int       `json:"strikes"`
	Time    time.Time `json:"time"`
}

func logBanEvent(target, route string, strikes int) {
	entry := BanLogEntry{
		Target:  target,
		Route:   route,
		Strikes: strikes,
		Time:    time.Now(),
	}
	data, _ := json.Marshal(entry)
	_ = rdb.RPush(ctx, DailyBanLogKey, data).Err()
}

// StartDailyBanSummary periodically drains the ban log and prints a
// summary, so repeated offenders show up in the server logs once a day.
func StartDailyBanSummary(interval time.Duration) {
	for {
		time.Sleep(interval)
		if rdb == nil {
			continue
		}

		entries, err := rdb.LRange(ctx, DailyBanLogKey, 0, -1).Result()
		if err != nil {
			log.Printf("Failed to read ban log: %v", err)
			continue
		}
		if len(entries) == 0 {
			continue
		}

		log.Printf("Ban summary: %d ban events in the last period", len(entries))
		for _, raw := range entries {
			var entry BanLogEntry
			if err := json.Unmarshal([]byte(raw), &entry); err != nil {
				continue
			}
			log.Printf("  %s banned on %s (%d strikes) at %s", entry.Target, entry.Route, entry.Strikes, entry.Time.Format(time.RFC3339))
		}
		rdb.Del(ctx, DailyBanLogKey)
	}
}
