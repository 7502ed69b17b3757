package domain

// The reference corpus is the compiled-in ground truth for the goal
// classifier: phrases that express real financial goals and phrases that do
// not. Both sets are embedded at startup and drive training of the network;
// the similarity fallback compares candidate goals against the same
// embeddings. The sets are small on purpose (tens of phrases) and never
// change at runtime.

// FinancialGoalPhrases are example statements of genuine financial goals.
var FinancialGoalPhrases = []string{
	"I want to save $5000 for an emergency fund within 6 months",
	"I want to save money every month",
	"My goal is to build an emergency fund",
	"I want to pay off my credit card debt",
	"My goal is to become debt-free this year",
	"I need to pay off my student loan faster",
	"I want to reduce my mortgage payments",
	"I want to invest in a retirement fund",
	"My goal is to max out my 401k contributions",
	"I want to open a Roth IRA",
	"I plan to diversify my investment portfolio",
	"I want to invest in mutual funds and ETFs",
	"I want to start investing in stocks and bonds",
	"I need to create a budget for my monthly expenses",
	"My goal is to track my expenses and cut costs",
	"I want to reduce my spending on eating out",
	"I want to stop overspending on subscriptions",
	"I want to increase my income with a side hustle",
	"My goal is to earn passive income",
	"I want to negotiate a raise at work",
	"I plan to start freelancing for extra income",
	"I want to save for a down payment on a house",
	"My goal is to buy a car without taking a loan",
	"I want to save up for a wedding",
	"I am saving for a vacation fund",
	"I want to reach financial independence",
	"My goal is to grow my net worth",
	"I want financial security for my family",
}

// UnrelatedPhrases are example statements that are not financial goals.
var UnrelatedPhrases = []string{
	"I want to learn how to play piano",
	"My goal is to run a marathon next spring",
	"I want to learn Spanish",
	"I need to organize my closet",
	"I want to read more books this year",
	"My goal is to cook dinner at home more often",
	"I want to get better at chess",
	"I plan to visit my grandmother next weekend",
	"I want to lose ten pounds",
	"My goal is to meditate every morning",
	"I want to paint the fence this summer",
	"I need to fix the leaking faucet",
	"I want to adopt a dog",
	"My goal is to write a novel",
	"I want to improve my photography skills",
	"I plan to plant a vegetable garden",
	"I want to watch less television",
	"My goal is to wake up earlier every day",
}
