package cli

import "dino-game-service/internal/domain"

// seedCatalogs returns the built-in question bank used when no database
// is configured.
func seedCatalogs() map[string]domain.Catalog {
	return map[string]domain.Catalog{
		"phishing-basics": {
			ID: "phishing-basics",
			Questions: []domain.Question{
				{
					ID:       "email-amazon-spoof",
					Category: domain.CategoryEmail,
					Payload: domain.Payload{
						Sender:  "security@amaz0n-support.com",
						Subject: "Your account has been suspended",
						Body:    "Dear customer, we detected unusual activity on your account. Click the link below within 24 hours to verify your identity or your account will be permanently closed.",
						URL:     "http://amaz0n-support.com/verify",
					},
					Deceptive:   true,
					Difficulty:  1,
					Explanation: "The sender domain replaces the letter o with a zero and the message pressures you with a deadline. Real providers never threaten instant closure.",
					Flags:       []string{"spoofed-domain", "urgency", "generic-greeting"},
					Hint:        "Read the sender address character by character.",
				},
				{
					ID:       "email-paypal-receipt",
					Category: domain.CategoryEmail,
					Payload: domain.Payload{
						Sender:  "service@paypal.com",
						Subject: "Receipt for your payment to Spotify AB",
						Body:    "You sent a payment of $9.99 to Spotify AB. It may take a few moments for this transaction to appear in your account.",
						URL:     "https://www.paypal.com/activity",
					},
					Deceptive:   false,
					Difficulty:  2,
					Explanation: "A plain receipt with no requested action and a correct sender domain is how legitimate payment confirmations look.",
				},
				{
					ID:       "email-lottery-advance",
					Category: domain.CategoryEmail,
					Payload: domain.Payload{
						Sender:  "claims@intl-lottery-commission.org",
						Subject: "CONGRATULATIONS! You won 2,500,000 USD",
						Body:    "Your email address was selected in our international draw. To release your winnings, transfer a processing fee of 150 USD to the account below.",
					},
					Deceptive:   true,
					Difficulty:  1,
					Explanation: "You cannot win a lottery you never entered, and no legitimate prize requires an advance fee.",
					Flags:       []string{"too-good-to-be-true", "data-request"},
					Hint:        "Did you ever buy a ticket?",
				},
				{
					ID:       "login-google-fake",
					Category: domain.CategoryLogin,
					Payload: domain.Payload{
						Company: "Google",
						URL:     "http://accounts.google.com.secure-login.net/signin",
						Body:    "Sign in to continue to Gmail",
					},
					Deceptive:   true,
					Difficulty:  2,
					Explanation: "The real domain here is secure-login.net. Everything left of it is a subdomain chosen by the attacker.",
					Flags:       []string{"spoofed-domain", "malicious-link"},
					Hint:        "The registered domain is the part right before the first slash.",
				},
				{
					ID:       "login-github-real",
					Category: domain.CategoryLogin,
					Payload: domain.Payload{
						Company: "GitHub",
						URL:     "https://github.com/login",
						Body:    "Sign in to GitHub",
					},
					Deceptive:   false,
					Difficulty:  1,
					Explanation: "The address bar shows the genuine github.com domain over HTTPS with nothing appended.",
				},
				{
					ID:       "message-dhl-smishing",
					Category: domain.CategoryMessage,
					Payload: domain.Payload{
						Sender: "+44 7911 023456",
						Body:   "DHL: Your parcel is held at our depot. Pay the outstanding customs fee of 1.99 GBP here: http://dhl-parcel-fee.info",
						URL:    "http://dhl-parcel-fee.info",
					},
					Deceptive:   true,
					Difficulty:  2,
					Explanation: "Carriers do not collect customs fees over text message links, and the domain has nothing to do with DHL.",
					Flags:       []string{"malicious-link", "urgency"},
					Hint:        "Were you expecting a parcel, and is that a DHL domain?",
				},
				{
					ID:       "message-bank-otp",
					Category: domain.CategoryMessage,
					Payload: domain.Payload{
						Sender: "YourBank",
						Body:   "Your one-time code is 493 210. It expires in 5 minutes. Never share this code with anyone, including bank staff.",
					},
					Deceptive:   false,
					Difficulty:  3,
					Explanation: "A code you requested yourself, with an explicit warning never to share it, is standard two-factor messaging. It asks you for nothing.",
				},
				{
					ID:       "contest-iphone-survey",
					Category: domain.CategoryContest,
					Payload: domain.Payload{
						Company: "Media Markt",
						Subject: "You are today's lucky visitor!",
						Body:    "Answer 3 short questions and claim your free iPhone 16 Pro. Only 2 devices left! Enter your card details to cover shipping.",
					},
					Deceptive:   true,
					Difficulty:  1,
					Explanation: "Free premium hardware for a survey, artificial scarcity, and a card-detail request are the classic prize-scam trio.",
					Flags:       []string{"too-good-to-be-true", "urgency", "data-request"},
					Hint:        "Why would a free prize need your card?",
				},
				{
					ID:       "email-it-password",
					Category: domain.CategoryEmail,
					Payload: domain.Payload{
						Sender:  "helpdesk@your-company.example",
						Subject: "Mandatory password audit",
						Body:    "As part of our annual security audit, reply to this email with your current password so we can verify it meets policy.",
					},
					Deceptive:   true,
					Difficulty:  3,
					Explanation: "No IT department ever asks for your password. Verification happens against stored hashes, never by collecting the secret itself.",
					Flags:       []string{"data-request", "logic-error"},
					Hint:        "Think about what IT can already see.",
				},
				{
					ID:       "email-newsletter",
					Category: domain.CategoryEmail,
					Payload: domain.Payload{
						Sender:  "newsletter@golangweekly.com",
						Subject: "Golang Weekly #512",
						Body:    "This week: profile-guided optimization lands in the toolchain, plus a deep dive on iterators. Unsubscribe anytime via the link in the footer.",
					},
					Deceptive:   false,
					Difficulty:  2,
					Explanation: "A newsletter you subscribed to, from its usual domain, asking for nothing, is exactly what it claims to be.",
				},
				{
					ID:       "image-qr-parking",
					Category: domain.CategoryImage,
					Payload: domain.Payload{
						Image: "qr-parking-sticker",
						Body:  "A QR code sticker pasted over the payment instructions on a parking meter, labelled 'Scan to pay - avoid the queue'.",
					},
					Deceptive:   true,
					Difficulty:  3,
					Explanation: "Stickers placed over official signage are a common trick to reroute payments. Use the machine or the official app instead.",
					Flags:       []string{"malicious-link"},
					Hint:        "Who put that sticker there?",
				},
				{
					ID:       "login-bank-real",
					Category: domain.CategoryLogin,
					Payload: domain.Payload{
						Company: "YourBank",
						URL:     "https://online.yourbank.example/login",
						Body:    "Log in to online banking",
					},
					Deceptive:   false,
					Difficulty:  3,
					Explanation: "The bank's own subdomain over HTTPS, reached by typing the address yourself, is the safe way in.",
				},
			},
		},
	}
}

// seedCases returns the built-in detective cases.
func seedCases() map[string]domain.ClueCase {
	return map[string]domain.ClueCase{
		"case-invoice": {
			ID:        "case-invoice",
			Title:     "The Overdue Invoice",
			Brief:     "An email claiming to be from your company's supplier demands immediate payment of an overdue invoice. Inspect the message, mark everything suspicious, then deliver your verdict.",
			Malicious: true,
			Zones: []domain.Zone{
				{
					ID:     "z-sender",
					Reason: "spoofed-domain",
					Label:  "billing@acme-supplies.co",
					Note:   "The real supplier uses acme-supplies.com. The .co lookalike was registered last week.",
				},
				{
					ID:     "z-link",
					Reason: "malicious-link",
					Label:  "View invoice: hxxp://acme-pay.info/inv/8841",
					Note:   "The payment link leads to acme-pay.info, a domain unrelated to the supplier.",
				},
				{
					ID:     "z-deadline",
					Reason: "urgency",
					Label:  "Settle within 4 hours to avoid legal action",
					Note:   "Impossible deadlines and legal threats are pressure tactics, not billing practice.",
				},
				{
					ID:     "z-greeting",
					Reason: "generic-greeting",
					Label:  "Dear Valued Customer",
					Note:   "Your supplier addresses invoices to your accounts team by name.",
				},
				{
					ID:     "z-amount",
					Reason: "logic-error",
					Label:  "Invoice #8841 for services rendered in Q5",
					Note:   "There is no fifth quarter. The template was filled in carelessly.",
				},
			},
			Reasons: []string{
				"spoofed-domain",
				"malicious-link",
				"urgency",
				"generic-greeting",
				"logic-error",
				"too-good-to-be-true",
				"data-request",
				"formatting-error",
			},
		},
	}
}
