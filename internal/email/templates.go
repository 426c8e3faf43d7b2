// Package email renders the applicant notification templates. Delivery is
// not wired in; callers log the rendered message and record it as queued.
package email

import "fmt"

// Message is a rendered notification.
type Message struct {
	Subject string
	Text    string
}

// Template renders the notification for a review outcome, keyed by the
// resulting status and personalized with the applicant's name.
func Template(approved bool, name string) Message {
	if approved {
		return Message{
			Subject: "Welcome to cwru.wtf! 🎉",
			Text: fmt.Sprintf(`Welcome to cwru.wtf, %s!

Congratulations! Your application has been approved and you're now officially part of the cwru.wtf community.

What's Next?
- Join our Discord server: [Discord Link]
- Check out our upcoming build sessions
- Browse our project repository
- Start collaborating with fellow makers!

We're excited to see what you'll build with us. Remember: We Tinker Fearlessly!

Best,
The cwru.wtf Team
`, name),
		}
	}
	return Message{
		Subject: "Thank you for your interest in cwru.wtf",
		Text: fmt.Sprintf(`Thank you, %s

Thank you for your interest in joining cwru.wtf.

While we weren't able to accept your application at this time, we encourage you to:
- Keep building and learning
- Follow us on social media for updates
- Apply again in the future

The maker community is always growing, and we hope to see you around campus!

Best,
The cwru.wtf Team
`, name),
	}
}
