package pattern

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/Veraticus/kharcha/internal/classification"
	"github.com/Veraticus/kharcha/internal/model"
)

// institutions are lenders recognized by name rather than by the person
// heuristic.
const institutions = `bank|finance|company|app|nabil|nic|global|ime|sanima|himalayan|prabhu|laxmi|siddhartha|sunrise|kumari|machhapuchhre|agricultural|ncb|citizens`

var digitRunRegex = regexp.MustCompile(`\d+`)

// ruleBuilder closes rule build functions over the shared heuristics.
type ruleBuilder struct {
	persons    *classification.PersonClassifier
	categorize *classification.Categorizer
}

// NewDefaultCascade builds the cascade over the built-in rule set.
func NewDefaultCascade(persons *classification.PersonClassifier, categorizer *classification.Categorizer) (*Cascade, error) {
	return NewCascade(DefaultRules(persons, categorizer))
}

// DefaultRules returns the built-in wording rules. Within a tier the order
// given here is the evaluation order.
func DefaultRules(persons *classification.PersonClassifier, categorizer *classification.Categorizer) []Rule {
	b := ruleBuilder{persons: persons, categorize: categorizer}

	var rules []Rule
	rules = append(rules, b.repaymentMadeRules()...)
	rules = append(rules, b.repaymentReceivedRules()...)
	rules = append(rules, b.loanCreationRules()...)
	rules = append(rules, b.repaymentDirectionRules()...)
	rules = append(rules, b.debtRules()...)
	rules = append(rules, b.incomeRules()...)
	rules = append(rules, b.ambiguousRules()...)
	rules = append(rules, b.giftExpenseRules()...)
	rules = append(rules, b.genericRules()...)
	return rules
}

func (b ruleBuilder) repaymentMadeRules() []Rule {
	return []Rule{
		b.personLoan("paid-loan-to-person", TierRepaymentMade,
			`^paid\s+(?:back\s+)?(?:the\s+)?loan\s+to\s+([a-z]+)\s+(\d+)$`, 1, 2,
			1, "loan repayment", "Paid back loan to %s"),
		b.personLoan("paid-person-money-taken", TierRepaymentMade,
			`^paid\s+([a-z]+)\s+(?:the\s+)?(?:money|loan|amount)\s+(?:i|that\s+i)\s+(?:took|borrowed)\s+(?:from\s+(?:him|her|them))?\s*(\d+)$`, 1, 2,
			1, "loan repayment", "Paid back money taken from %s"),
		b.personLoan("repaid-person", TierRepaymentMade,
			`^repaid\s+([a-z]+)\s+(\d+)$`, 1, 2,
			1, "loan repayment", "Repaid loan to %s"),
		b.personLoan("repaid-amount-to-person", TierRepaymentMade,
			`^repaid\s+(\d+)\s+to\s+([a-z]+)$`, 2, 1,
			1, "loan repayment", "Repaid loan to %s"),
		{
			Name:        "paid-amount-to-institution",
			Tier:        TierRepaymentMade,
			Regex:       `^paid\s+(\d+)\s+to\s+(?:the\s+)?(` + institutions + `)(?:\s+(?:for|as)\s+(.+))?$`,
			AmountGroup: 1,
			Build: func(g []string, amount int64) (model.Candidate, bool) {
				name := classification.Title(g[2])
				remarks := "Loan repayment to " + name
				if g[3] != "" {
					remarks += " for " + classification.Title(g[3])
				}
				return loanCandidate(amount, "loan repayment", remarks, name), true
			},
		},
	}
}

func (b ruleBuilder) repaymentReceivedRules() []Rule {
	return []Rule{
		b.personLoan("paid-to-person-their-loan", TierRepaymentReceived,
			`^paid\s+to\s+([a-z]+)\s+(?:his|her|their)\s+loan\s+(\d+)$`, 1, 2,
			-1, "loan received back", "%s paid back their loan"),
		b.personLoan("person-paid-their-loan", TierRepaymentReceived,
			`^([a-z]+)\s+paid\s+(?:back\s+)?(?:his|her|their)\s+loan\s+(\d+)$`, 1, 2,
			-1, "loan received back", "%s paid back their loan"),
		{
			Name:        "loan-back-from-person",
			Tier:        TierRepaymentReceived,
			Regex:       `^(received|got)\s+(?:the\s+)?loan\s+back\s+from\s+([a-z]+)\s+(\d+)$`,
			AmountGroup: 3,
			Build: func(g []string, amount int64) (model.Candidate, bool) {
				name, ok := b.person(g[2])
				if !ok {
					return model.Candidate{}, false
				}
				remarks := classification.Title(g[1]) + " loan back from " + name
				return loanCandidate(-amount, "loan received back", remarks, name), true
			},
		},
	}
}

func (b ruleBuilder) loanCreationRules() []Rule {
	return []Rule{
		b.institutionLoan("amount-borrowed-from-institution",
			`^(\d+)\s+(?:borrowed|took|loan)\s+from\s+(`+institutions+`)(?:\s+(?:for|to)\s+(.+))?$`),
		b.institutionLoan("borrowed-amount-from-institution",
			`^(?:i\s+)?(?:borrowed|took)\s+(\d+)\s+(?:loan\s+)?from\s+(`+institutions+`)(?:\s+(?:for|to)\s+(.+))?$`),
		b.personLoan("person-lent-me", TierLoanCreation,
			`^([a-z]+)\s+lent(?:\s+me)?\s+(\d+)$`, 1, 2,
			-1, "loan from", "Loan from %s"),
		b.personLoan("i-borrowed-from-person", TierLoanCreation,
			`^i\s+(?:borrowed|took)\s+(\d+)\s+from\s+([a-z]+)$`, 2, 1,
			-1, "borrowed from", "Borrowed from %s"),
		b.personLoan("person-borrowed", TierLoanCreation,
			`^([a-z]+)\s+(?:borrowed|took)\s+(\d+)$`, 1, 2,
			1, "lent to", "Lent to %s"),
		b.personLoan("amount-borrowed-from-person", TierLoanCreation,
			`^(\d+)\s+(?:borrowed|took)\s+from\s+([a-z]+)`, 2, 1,
			-1, "borrowed from", "Borrowed from %s"),
		b.personLoan("borrowed-amount-from-person", TierLoanCreation,
			`^(?:took|borrowed)\s+(\d+)\s+(?:loan\s+)?from\s+([a-z]+)`, 2, 1,
			-1, "borrowed from", "Borrowed from %s"),
		b.personLoan("amount-lent-to-person", TierLoanCreation,
			`^(\d+)\s+(?:lent|gave|lend|sent)\s+to\s+([a-z]+)`, 2, 1,
			1, "lent to", "Lent to %s"),
		b.personLoan("lent-amount-to-person", TierLoanCreation,
			`^(?:lent|gave|lend|sent)\s+(\d+)\s+to\s+([a-z]+)`, 2, 1,
			1, "loan given", "Lent to %s"),
		{
			Name:        "gave-person-amount-for-duration",
			Tier:        TierLoanCreation,
			Regex:       `^(?:gave|lend|lent)\s+([a-z]+)\s+(\d+)\s+for\s+(.+)$`,
			AmountGroup: 2,
			Build: func(g []string, amount int64) (model.Candidate, bool) {
				name, ok := b.person(g[1])
				if !ok {
					return model.Candidate{}, false
				}
				return loanCandidate(amount, "loan given", "Lent to "+name+" for "+g[3], name), true
			},
		},
		b.personLoan("gave-person-amount-loan", TierLoanCreation,
			`^(?:gave|lend|lent)\s+([a-z]+)\s+(\d+)\s*(?:loan|rin|udhar)?$`, 1, 2,
			1, "loan", "Loan given to %s"),
		{
			Name:        "loan-paid-amount",
			Tier:        TierLoanCreation,
			Regex:       `^loan\s+paid\s+(\d+)$`,
			AmountGroup: 1,
			Build: func(_ []string, amount int64) (model.Candidate, bool) {
				return loanCandidate(amount, "loan given", "Loan given", ""), true
			},
		},
	}
}

func (b ruleBuilder) repaymentDirectionRules() []Rule {
	return []Rule{
		b.personLoan("person-paid-amount", TierRepaymentDirection,
			`^([a-z]+)\s+paid\s+(\d+)$`, 1, 2,
			-1, "received from", "Paid back by %s"),
		b.personLoan("amount-paid-to-person", TierRepaymentDirection,
			`^(\d+)\s+paid\s+to\s+([a-z]+)`, 2, 1,
			1, "paid to", "Paid to %s"),
		b.personLoan("paid-amount-to-person", TierRepaymentDirection,
			`^paid\s+(\d+)\s+to\s+([a-z]+)`, 2, 1,
			1, "paid to", "Paid to %s"),
		b.personLoan("amount-received-from-person", TierRepaymentDirection,
			`^(\d+)\s+(?:received|got|returned)\s+from\s+([a-z]+)`, 2, 1,
			-1, "received from", "Received from %s"),
		b.personLoan("received-amount-from-person", TierRepaymentDirection,
			`^(?:got\s+back|got|received|returned)\s+(\d+)\s+from\s+([a-z]+)`, 2, 1,
			-1, "received from", "Received from %s"),
		b.personLoan("received-loan-from-person", TierRepaymentDirection,
			`^(?:took|borrowed|received|recived|recieved|got)(?:\s+back)?\s+(?:loan\s+)?from\s+([a-z]+)\s+(\d+)`, 1, 2,
			-1, "loan transaction", "Loan transaction with %s"),
	}
}

func (b ruleBuilder) debtRules() []Rule {
	return []Rule{
		{
			Name:        "person-owes-person",
			Tier:        TierDebt,
			Regex:       `([a-z]+)\s+(?:owes?|ows?|owz|owse|debt|borrows?|lends?|udhar|qarz)\s+(\d+)\s+(?:to|from)\s+([a-z]+)`,
			AmountGroup: 2,
			Build: func(g []string, amount int64) (model.Candidate, bool) {
				debtor, ok := b.person(g[1])
				if !ok {
					return model.Candidate{}, false
				}
				creditor, ok := b.person(g[3])
				if !ok {
					return model.Candidate{}, false
				}
				item := strings.ToLower(g[1]) + " owes " + strings.ToLower(g[3])
				return loanCandidate(amount, item, debtor+" owes "+creditor, debtor), true
			},
		},
	}
}

func (b ruleBuilder) incomeRules() []Rule {
	return []Rule{
		{
			Name:        "got-salary",
			Tier:        TierIncome,
			Regex:       `^(?:got|received)\s+salary\s+(today\s+)?(\d+)$`,
			AmountGroup: 2,
			Build: func(g []string, amount int64) (model.Candidate, bool) {
				remarks := "Salary received"
				if g[1] != "" {
					remarks = "Got Salary Today"
				}
				return incomeCandidate(amount, "salary", remarks), true
			},
		},
		{
			Name:        "salary-amount-received",
			Tier:        TierIncome,
			Regex:       `^salary\s+(\d+)\s+(?:received|got)$`,
			AmountGroup: 1,
			Build: func(_ []string, amount int64) (model.Candidate, bool) {
				return incomeCandidate(amount, "salary", "Salary received"), true
			},
		},
		{
			Name:        "income-amount",
			Tier:        TierIncome,
			Regex:       `^(salary|bonus|incentive|refund|income|earning|payment|received)\s+(\d+)$`,
			AmountGroup: 2,
			Build: func(g []string, amount int64) (model.Candidate, bool) {
				kind := strings.ToLower(g[1])
				remarks := classification.Title(kind) + " received"
				if kind == "received" {
					remarks = "Amount received"
				}
				return incomeCandidate(amount, kind, remarks), true
			},
		},
	}
}

func (b ruleBuilder) ambiguousRules() []Rule {
	return []Rule{
		{
			Name:        "i-gave-person",
			Tier:        TierAmbiguous,
			Regex:       `^i\s+(?:gave|lent|sent)\s+([a-z]+)\s+(\d+)$`,
			AmountGroup: 2,
			Build: func(g []string, amount int64) (model.Candidate, bool) {
				name, ok := b.person(g[1])
				if !ok {
					return model.Candidate{}, false
				}
				return ambiguousCandidate(amount, "given to person", fmt.Sprintf("Gave Rs.%d to %s", amount, name), name,
					lentOption(name), giftGivenOption(name)), true
			},
		},
		{
			Name:        "person-gave-me",
			Tier:        TierAmbiguous,
			Regex:       `^([a-z]+)\s+(?:gave|sent|send)(?:\s+me)?\s+(\d+)$`,
			AmountGroup: 2,
			Build: func(g []string, amount int64) (model.Candidate, bool) {
				name, ok := b.person(g[1])
				if !ok {
					return model.Candidate{}, false
				}
				return ambiguousCandidate(-amount, "received from", "Received from "+name, name,
					giftReceivedOption(name), loanReceivedOption(name)), true
			},
		},
		b.receivedSomething("received-thing-from-person-amount",
			`^(?:got|received)\s+(gift|money|cash|amount|fund|funds)\s+from\s+([a-z]+)\s+(\d+)$`, 1, 2, 3),
		b.receivedSomething("received-thing-amount-from-person",
			`^(?:got|received)\s+(gift|money|cash|amount|fund|funds)\s+(\d+)\s+from\s+([a-z]+)$`, 1, 3, 2),
		{
			Name:        "amount-from-person",
			Tier:        TierAmbiguous,
			Regex:       `^(\d+)\s+from\s+([a-z]+)$`,
			AmountGroup: 1,
			Build: func(g []string, amount int64) (model.Candidate, bool) {
				name, ok := b.person(g[2])
				if !ok {
					return model.Candidate{}, false
				}
				return ambiguousCandidate(-amount, "from person", fmt.Sprintf("Rs.%d from %s", amount, name), name,
					loanReceivedOption(name), giftReceivedOption(name), repaidToMeOption(name)), true
			},
		},
		{
			Name:        "amount-to-person",
			Tier:        TierAmbiguous,
			Regex:       `^(\d+)\s+to\s+([a-z]+)$`,
			AmountGroup: 1,
			Build: func(g []string, amount int64) (model.Candidate, bool) {
				name, ok := b.person(g[2])
				if !ok {
					return model.Candidate{}, false
				}
				return ambiguousCandidate(amount, "to person", fmt.Sprintf("Rs.%d to %s", amount, name), name,
					lentOption(name), repaidByMeOption(name), giftGivenOption(name)), true
			},
		},
	}
}

func (b ruleBuilder) giftExpenseRules() []Rule {
	return []Rule{
		{
			Name:        "gift-for-person",
			Tier:        TierGiftExpense,
			Regex:       `^(?:(?:got|bought|get|buy|purchased)\s+)?(?:a\s+)?gift\s+for\s+([a-z]+)\s+(\d+)$`,
			AmountGroup: 2,
			Build: func(g []string, amount int64) (model.Candidate, bool) {
				return model.Candidate{
					Amount:   amount,
					Item:     "gift",
					Category: model.CategoryShopping,
					Remarks:  "Gift for " + classification.Title(g[1]),
				}, true
			},
		},
	}
}

func (b ruleBuilder) genericRules() []Rule {
	detailed := b.categorize.Remark
	plain := func(item, _ string) string { return classification.Title(item) }

	return []Rule{
		b.expenseRule("amount-for-item", `^(\d+)\s+(?:for|on)\s+(?:the\s+)?(.+)$`, 1, 2, detailed),
		b.expenseRule("amount-spent-on-item", `^(\d+)\s+(?:spend|spent)\s+on\s+(?:the\s+)?(.+)$`, 1, 2, plain),
		b.expenseRule("amount-item", `^(\d+)\s+(.+)$`, 1, 2, detailed),
		b.expenseRule("spent-or-paid-amount-on-item", `^(?:spend|spent|paid|payed)\s+(\d+)\s+(?:on|for)\s+(?:the\s+)?(.+)$`, 1, 2, plain),
		b.paidByRule("item-dash-paid-by-person", `^(.+?)\s*-\s*paid\s+by\s+([a-z]+)\s+(\d+)$`, 1, 2, 3),
		b.paidByRule("item-amount-paid-by-person", `^([a-z\s]+?)\s+(\d+)\s+paid\s+by\s+([a-z]+)$`, 1, 3, 2),
		b.expenseRule("item-costs-amount", `^([a-z\s]+?)\s+costs?\s+(\d+)$`, 2, 1, detailed),
		b.expenseRule("item-of-amount", `^(.+?)\s+of\s+(\d+)$`, 2, 1, detailed),
		{
			Name:        "item-for-context-amount",
			Tier:        TierGeneric,
			Regex:       `^([a-z\s]+?)\s+(?:for|on)\s+([a-z\s]+?)\s+(\d+)$`,
			AmountGroup: 3,
			Build: func(g []string, amount int64) (model.Candidate, bool) {
				return b.expense(g[1]+" for "+g[2], amount, detailed), true
			},
		},
		{
			Name:        "item-person-amount",
			Tier:        TierGeneric,
			Regex:       `^([a-z\s]+?)\s+([a-z]+)\s+(\d+)$`,
			AmountGroup: 3,
			Build: func(g []string, amount int64) (model.Candidate, bool) {
				words := strings.Fields(g[1])
				context := ""
				if len(words) > 0 {
					context = words[len(words)-1]
				}
				if !b.persons.IsLikelyPerson(g[2], context) {
					return b.expense(g[1]+" "+g[2], amount, detailed), true
				}
				name := classification.Title(g[2])
				cand := b.expense(g[1], amount, detailed)
				cand.Remarks = classification.Title(cand.Item) + " - Paid by " + name
				cand.PaidBy = name
				return cand, true
			},
		},
		{
			Name:        "item-amount",
			Tier:        TierGeneric,
			Regex:       `^([a-z\s]+?)\s+(\d+)$`,
			AmountGroup: 2,
			Build: func(g []string, amount int64) (model.Candidate, bool) {
				if strings.EqualFold(strings.TrimSpace(g[1]), "loan") {
					return loanCandidate(amount, "loan given", "Loan given", ""), true
				}
				return b.expense(g[1], amount, detailed), true
			},
		},
		{
			Name:        "first-number",
			Tier:        TierGeneric,
			Regex:       `^(\D*)(\d+)(.*)$`,
			AmountGroup: 2,
			Build: func(g []string, amount int64) (model.Candidate, bool) {
				item := strings.TrimSpace(digitRunRegex.ReplaceAllString(g[0], ""))
				if item == "" {
					return model.Candidate{}, false
				}
				return b.expense(item, amount, detailed), true
			},
		},
	}
}

// person applies the person heuristic without context and returns the
// title-cased name.
func (b ruleBuilder) person(word string) (string, bool) {
	if !b.persons.IsLikelyPerson(word, "") {
		return "", false
	}
	return classification.Title(word), true
}

// personLoan builds a Loan rule binding one counter-party. sign is +1 for
// cash leaving the user and -1 for cash entering; remarks takes the name.
func (b ruleBuilder) personLoan(name string, tier Tier, regex string, personGroup, amountGroup int, sign int64, item, remarks string) Rule {
	return Rule{
		Name:        name,
		Tier:        tier,
		Regex:       regex,
		AmountGroup: amountGroup,
		Build: func(g []string, amount int64) (model.Candidate, bool) {
			who, ok := b.person(g[personGroup])
			if !ok {
				return model.Candidate{}, false
			}
			return loanCandidate(sign*amount, item, fmt.Sprintf(remarks, who), who), true
		},
	}
}

func (b ruleBuilder) institutionLoan(name, regex string) Rule {
	return Rule{
		Name:        name,
		Tier:        TierLoanCreation,
		Regex:       regex,
		AmountGroup: 1,
		Build: func(g []string, amount int64) (model.Candidate, bool) {
			lender := classification.Title(g[2])
			remarks := "Borrowed from " + lender
			if g[3] != "" {
				remarks += " for " + classification.Title(g[3])
			}
			return loanCandidate(-amount, "bank loan", remarks, lender), true
		},
	}
}

func (b ruleBuilder) receivedSomething(name, regex string, whatGroup, personGroup, amountGroup int) Rule {
	return Rule{
		Name:        name,
		Tier:        TierAmbiguous,
		Regex:       regex,
		AmountGroup: amountGroup,
		Build: func(g []string, amount int64) (model.Candidate, bool) {
			who, ok := b.person(g[personGroup])
			if !ok {
				return model.Candidate{}, false
			}
			what := strings.ToLower(g[whatGroup])
			return ambiguousCandidate(-amount, what+" from person", "Received "+what+" from "+who, who,
				giftReceivedOption(who), loanReceivedOption(who)), true
		},
	}
}

func (b ruleBuilder) expenseRule(name, regex string, amountGroup, itemGroup int, remark func(item, category string) string) Rule {
	return Rule{
		Name:        name,
		Tier:        TierGeneric,
		Regex:       regex,
		AmountGroup: amountGroup,
		Build: func(g []string, amount int64) (model.Candidate, bool) {
			return b.expense(g[itemGroup], amount, remark), true
		},
	}
}

// paidByRule records an expense settled by someone else. The payer is taken
// as written, since "paid by" already names them.
func (b ruleBuilder) paidByRule(name, regex string, itemGroup, personGroup, amountGroup int) Rule {
	return Rule{
		Name:        name,
		Tier:        TierGeneric,
		Regex:       regex,
		AmountGroup: amountGroup,
		Build: func(g []string, amount int64) (model.Candidate, bool) {
			payer := classification.Title(g[personGroup])
			cand := b.expense(g[itemGroup], amount, nil)
			cand.Remarks = classification.Title(cand.Item) + " - Paid by " + payer
			cand.PaidBy = payer
			return cand, true
		},
	}
}

// expense cleans and categorizes a free-form item.
func (b ruleBuilder) expense(raw string, amount int64, remark func(item, category string) string) model.Candidate {
	item := b.categorize.CleanItem(raw)
	category := b.categorize.Categorize(item)

	cand := model.Candidate{
		Amount:   amount,
		Item:     strings.ToLower(item),
		Category: category,
	}
	if remark != nil {
		cand.Remarks = remark(item, category)
	}
	return cand
}

func loanCandidate(amount int64, item, remarks, paidBy string) model.Candidate {
	return model.Candidate{
		Amount:   amount,
		Item:     item,
		Category: model.CategoryLoan,
		Remarks:  remarks,
		PaidBy:   paidBy,
	}
}

func incomeCandidate(amount int64, item, remarks string) model.Candidate {
	return model.Candidate{
		Amount:   -amount,
		Item:     item,
		Category: model.CategoryIncome,
		Remarks:  remarks,
	}
}

// ambiguousCandidate carries a provisional sign; the chosen option's
// direction settles it.
func ambiguousCandidate(amount int64, item, remarks, paidBy string, options ...model.ConfirmationOption) model.Candidate {
	return model.Candidate{
		Amount:     amount,
		Item:       item,
		Category:   model.CategoryOther,
		Remarks:    remarks,
		PaidBy:     paidBy,
		Resolution: model.NeedsConfirmation{Options: options},
	}
}

func lentOption(name string) model.ConfirmationOption {
	return model.ConfirmationOption{
		Category:  model.CategoryLoan,
		Label:     "Loan given (they will repay)",
		Remarks:   "Lent to " + name,
		Direction: model.DirectionOut,
	}
}

func giftGivenOption(name string) model.ConfirmationOption {
	return model.ConfirmationOption{
		Category:  model.CategoryGifts,
		Label:     "Gift (no repayment expected)",
		Remarks:   "Gift to " + name,
		Direction: model.DirectionOut,
	}
}

func repaidByMeOption(name string) model.ConfirmationOption {
	return model.ConfirmationOption{
		Category:  model.CategoryLoan,
		Label:     "Repayment (I paid back)",
		Remarks:   "Repaid " + name,
		Direction: model.DirectionOut,
	}
}

func giftReceivedOption(name string) model.ConfirmationOption {
	return model.ConfirmationOption{
		Category:  model.CategoryGiftIncome,
		Label:     "Gift (no repayment needed)",
		Remarks:   "Gift from " + name,
		Direction: model.DirectionIn,
	}
}

func loanReceivedOption(name string) model.ConfirmationOption {
	return model.ConfirmationOption{
		Category:  model.CategoryLoan,
		Label:     "Loan (need to repay)",
		Remarks:   "Loan received from " + name,
		Direction: model.DirectionIn,
	}
}

func repaidToMeOption(name string) model.ConfirmationOption {
	return model.ConfirmationOption{
		Category:  model.CategoryLoan,
		Label:     "Repayment (they paid me back)",
		Remarks:   "Received back from " + name,
		Direction: model.DirectionIn,
	}
}
