package emailsvc

import (
	"log"
	"net/mail"
	"os"
	"strings"

	"github.com/academiahq/academia/core"
)

// consoleService prints emails to stdout. DEV and TEST only.
type consoleService struct {
	conf *core.Config
	log  *log.Logger
}

var _ core.EmailService = (*consoleService)(nil)

func NewConsoleService(conf *core.Config) *consoleService {
	return &consoleService{
		conf: conf,
		log:  log.New(os.Stdout, "MAIL : ", log.LstdFlags),
	}
}

func (svc consoleService) SendMessages(messages ...*core.EmailMessage) {
	for _, msg := range messages {
		if !msg.HasRecipients() || !msg.HasContent() {
			continue
		}
		from := svc.conf.FromEmail()
		svc.log.Printf(
			"\nFrom: %s\nTo: %s\nSubject: [%s] %s\n\n%s\n",
			from.String(),
			joinAddresses(msg.To),
			svc.conf.AppName,
			msg.Subject,
			msg.BodyStr,
		)
	}
}

func joinAddresses(addrs []mail.Address) string {
	strs := make([]string, 0, len(addrs))
	for _, a := range addrs {
		strs = append(strs, a.String())
	}
	return strings.Join(strs, ", ")
}
