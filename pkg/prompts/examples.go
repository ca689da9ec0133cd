package prompts

// Example is a labeled transcript/summary pair used to steer the inference
// backend toward the expected summary style.
type Example struct {
	Conversation string
	Summary      string
}

// summaryExamples is the embedded few-shot set. Order matters: the backend is
// conditioned on the examples in exactly this sequence.
var summaryExamples = []Example{
	{
		Conversation: "user1: Hello!\n" +
			"user2: Hi there! How can I help you today?\n" +
			"user1: I need some information about your services.\n" +
			"user2: Sure, we offer web hosting, domain registration and email plans. Which one are you interested in?\n" +
			"user1: Web hosting, mostly the pricing.\n" +
			"user2: Our basic plan starts at $5 a month. I'll send you the full price list.\n",
		Summary: "user1 asked about the company's services and web hosting pricing; user2 quoted the basic plan at $5 a month and offered to send the full price list.",
	},
	{
		Conversation: "alice: Are we still meeting tomorrow?\n" +
			"bob: Yes, 10am at the office.\n" +
			"alice: Can we push it to 11? My train gets in late.\n" +
			"bob: 11 works. I'll move the room booking.\n",
		Summary: "alice and bob moved tomorrow's office meeting from 10am to 11am; bob will update the room booking.",
	},
	{
		Conversation: "customer: My order #4821 arrived damaged.\n" +
			"agent: I'm sorry to hear that. Could you send a photo of the damage?\n" +
			"customer: Just uploaded it.\n" +
			"agent: Thanks. I've issued a replacement, it ships today and you don't need to return the damaged item.\n" +
			"customer: Great, thank you!\n",
		Summary: "The customer reported that order #4821 arrived damaged and sent a photo; the agent issued a replacement shipping today with no return required.",
	},
	{
		Conversation: "dev1: The deploy failed again.\n" +
			"dev2: Same migration error?\n" +
			"dev1: Yes, the users table lock times out.\n" +
			"dev2: Let's run the migration off-peak tonight and retry the deploy after.\n" +
			"dev1: Agreed.\n",
		Summary: "A deploy failed because a users table migration timed out waiting for a lock; dev1 and dev2 agreed to run the migration off-peak tonight and redeploy afterwards.",
	},
}
