package xmpp

import (
	"crypto/tls"
	"errors"
	"strings"

	"github.com/mattn/go-xmpp"
	log "github.com/sirupsen/logrus"
)

type (
	// Config for the notifier.
	Config struct {
		Host     string
		Jid      string
		Password string
		To       string
	}

	Xmpp struct {
		Config Config
	}
)

var ErrMissingConfig = errors.New("missing xmpp config")

func serverName(jid string) string {
	parts := strings.SplitN(jid, "@", 2)
	if len(parts) < 2 {
		return jid
	}
	return parts[1]
}

// Enabled reports whether enough is configured to send messages.
func (x Xmpp) Enabled() bool {
	return len(x.Config.Jid) > 0 && len(x.Config.Password) > 0 && len(x.Config.To) > 0
}

func (x Xmpp) options() xmpp.Options {
	host := x.Config.Host
	if len(host) == 0 {
		host = serverName(x.Config.Jid)
	}
	// one per client, concurrent sends never touch xmpp.DefaultConfig
	tlsConfig := &tls.Config{
		ServerName:         strings.Split(host, ":")[0],
		InsecureSkipVerify: true,
	}

	return xmpp.Options{
		Host:          host,
		User:          x.Config.Jid,
		Password:      x.Config.Password,
		NoTLS:         true,
		StartTLS:      true,
		Debug:         false,
		Session:       false,
		Status:        "xa",
		StatusMessage: "computing target points",
		TLSConfig:     tlsConfig,
	}
}

// Send delivers message as a chat to the configured recipient.
func (x Xmpp) Send(message string) error {
	if !x.Enabled() {
		return ErrMissingConfig
	}

	options := x.options()
	log.WithField("host", options.Host).Debug("create xmpp client")
	talk, err := options.NewClient()
	if err != nil {
		return err
	}
	defer talk.Close()

	log.WithField("to", x.Config.To).Debug("send xmpp message")
	_, err = talk.Send(xmpp.Chat{Remote: x.Config.To, Type: "chat", Text: message})
	return err
}
