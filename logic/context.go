package logic

import (
	"github.com/ezeflt/horizon-ai/errs"
	"github.com/ezeflt/horizon-ai/models"
	"github.com/ezeflt/horizon-ai/pkg"
)

// ContextWindow is how many trailing history messages are forwarded to
// the completion endpoint with each request.
const ContextWindow = 10

// SystemInstruction is the fixed instruction prepended to every
// completion request.
const SystemInstruction = `You are an AI assistant specialized in analyzing company revenue, employee management and employer information.
You help users understand their financial data, transactions, performance and human resources.
Answer clearly, professionally and concisely.

AVAILABLE INFORMATION:
- Revenue: September 100k EUR, October 10k EUR, November 300k EUR (total 410k EUR)
- Employees: 4 employees (Martin Pierre 32, Bernard Marie 28, Dubois Thomas 35, Laurent Sophie 30)
- Employer: Dupont Jean
- Total transaction count: varies by month

You can answer questions about:
- Revenue (total, per month, evolution)
- Employees (count, names, ages, team composition)
- The employer (last name, first name)
- Analyses and insights about company performance.`

// BuildContext assembles the outbound message list: one system entry,
// the trailing window of history with roles mapped verbatim, then the
// new user message. Pure; the only failure is a history message whose
// role is neither user nor assistant.
func BuildContext(systemInstruction string, history []models.ChatMessage, newUserMessage string) ([]pkg.RequestMessage, error) {
	recent := history
	if len(recent) > ContextWindow {
		recent = recent[len(recent)-ContextWindow:]
	}

	messages := make([]pkg.RequestMessage, 0, len(recent)+2)
	messages = append(messages, pkg.RequestMessage{
		Role:    "system",
		Content: systemInstruction,
	})

	for _, msg := range recent {
		if msg.Role != models.RoleUser && msg.Role != models.RoleAssistant {
			return nil, errs.Newf(errs.KindInvalidRole, "history contains message with role %q", msg.Role)
		}
		messages = append(messages, pkg.RequestMessage{
			Role:    msg.Role,
			Content: msg.Content,
		})
	}

	messages = append(messages, pkg.RequestMessage{
		Role:    models.RoleUser,
		Content: newUserMessage,
	})
	return messages, nil
}
