package llm

import "fmt"

// buildPrompt asks the model to turn text into the candidate wire shape.
func buildPrompt(text string) string {
	return fmt.Sprintf(`You are an intelligent personal finance assistant. Parse the following text into structured transaction data.
Understand the intent behind each transaction and categorize it accurately.

Text to parse: %q

RULES:
1. GIFT FOR vs GIFT FROM:
   - "gift for [person]", "bought gift for [person]" is an EXPENSE (Shopping). Remark "Gift for [Person]". Do not set paid_by.
   - "gift from [person]", "got gift from [person]" is AMBIGUOUS. Set "needs_confirmation": true with options for Gift Income or Loan.

2. PAID_BY:
   - Set "paid_by" only when the text explicitly says "paid by [person]", or for loan transactions.
   - For ordinary expenses such as "gift for sonu" or "food for party", "paid_by" is null.

3. AMBIGUOUS CASES:
   - "got gift", "received gift", "got money", "received money" from a person is ambiguous.
   - Set "needs_confirmation": true and provide a "confirmation_options" array. Each option has "category", "label", "remarks" and "direction" ("in" when money came to me, "out" when it left me).

4. LOANS:
   - "borrowed", "took loan" from a person is a Loan received. The amount is NEGATIVE.
   - "lent", "gave loan" to a person is a Loan given. The amount is POSITIVE.

5. INCOME:
   - Salary, bonus, refund and incentive are Income. The amount is NEGATIVE.

6. CATEGORIES:
   - Use specific categories such as Shopping (for gifts), Food, Groceries, Transport, Utilities, Rent, Health, Loan, Income.
   - Create a new category if none fits.

7. NUMBERS:
   - "k" = 1,000, "lakh"/"l" = 100,000, "cr" = 10,000,000. Amounts are whole numbers.

8. FORMAT:
   - "remarks" is a short summary such as "Gift for Sonu" or "Lunch expense".

Return ONLY valid JSON.
Example 1, a regular expense:
{"expenses": [{"amount": 400, "item": "gift", "category": "Shopping", "remarks": "Gift for Sonu", "paid_by": null}]}

Example 2, an ambiguous case:
{"expenses": [{"amount": -4000, "item": "gift from person", "category": "Other", "remarks": "Received gift from Sonu", "paid_by": "Sonu", "needs_confirmation": true, "confirmation_options": [{"category": "Gift Income", "label": "Gift (no repayment needed)", "remarks": "Gift from Sonu", "direction": "in"}, {"category": "Loan", "label": "Loan (need to repay)", "remarks": "Loan received from Sonu", "direction": "in"}]}]}
`, text)
}
