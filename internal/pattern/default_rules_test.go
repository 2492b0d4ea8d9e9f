package pattern

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Veraticus/kharcha/internal/classification"
	"github.com/Veraticus/kharcha/internal/model"
)

func newTestCascade(t *testing.T) *Cascade {
	t.Helper()
	c, err := NewDefaultCascade(
		classification.NewPersonClassifier(classification.DefaultCategories()),
		classification.NewDefaultCategorizer(),
	)
	require.NoError(t, err)
	return c
}

func TestDefaultRules_Resolved(t *testing.T) {
	c := newTestCascade(t)

	tests := []struct {
		name   string
		clause string
		rule   string
		want   model.Candidate
	}{
		{
			name:   "paid loan to person",
			clause: "paid loan to hari 400",
			rule:   "paid-loan-to-person",
			want:   model.Candidate{Amount: 400, Item: "loan repayment", Category: model.CategoryLoan, Remarks: "Paid back loan to Hari", PaidBy: "Hari"},
		},
		{
			name:   "paid person money taken",
			clause: "paid hari money i took from him 5000",
			rule:   "paid-person-money-taken",
			want:   model.Candidate{Amount: 5000, Item: "loan repayment", Category: model.CategoryLoan, Remarks: "Paid back money taken from Hari", PaidBy: "Hari"},
		},
		{
			name:   "repaid person",
			clause: "repaid hari 500",
			rule:   "repaid-person",
			want:   model.Candidate{Amount: 500, Item: "loan repayment", Category: model.CategoryLoan, Remarks: "Repaid loan to Hari", PaidBy: "Hari"},
		},
		{
			name:   "repaid amount to person",
			clause: "repaid 500 to hari",
			rule:   "repaid-amount-to-person",
			want:   model.Candidate{Amount: 500, Item: "loan repayment", Category: model.CategoryLoan, Remarks: "Repaid loan to Hari", PaidBy: "Hari"},
		},
		{
			name:   "paid amount to institution",
			clause: "paid 100000 to bank",
			rule:   "paid-amount-to-institution",
			want:   model.Candidate{Amount: 100000, Item: "loan repayment", Category: model.CategoryLoan, Remarks: "Loan repayment to Bank", PaidBy: "Bank"},
		},
		{
			name:   "paid to person their loan",
			clause: "paid to hari his loan 500",
			rule:   "paid-to-person-their-loan",
			want:   model.Candidate{Amount: -500, Item: "loan received back", Category: model.CategoryLoan, Remarks: "Hari paid back their loan", PaidBy: "Hari"},
		},
		{
			name:   "person paid back their loan",
			clause: "hari paid back his loan 400",
			rule:   "person-paid-their-loan",
			want:   model.Candidate{Amount: -400, Item: "loan received back", Category: model.CategoryLoan, Remarks: "Hari paid back their loan", PaidBy: "Hari"},
		},
		{
			name:   "received loan back",
			clause: "received loan back from hari 500",
			rule:   "loan-back-from-person",
			want:   model.Candidate{Amount: -500, Item: "loan received back", Category: model.CategoryLoan, Remarks: "Received loan back from Hari", PaidBy: "Hari"},
		},
		{
			name:   "got loan back",
			clause: "got loan back from sita 300",
			rule:   "loan-back-from-person",
			want:   model.Candidate{Amount: -300, Item: "loan received back", Category: model.CategoryLoan, Remarks: "Got loan back from Sita", PaidBy: "Sita"},
		},
		{
			name:   "person lent me",
			clause: "hari lent me 400",
			rule:   "person-lent-me",
			want:   model.Candidate{Amount: -400, Item: "loan from", Category: model.CategoryLoan, Remarks: "Loan from Hari", PaidBy: "Hari"},
		},
		{
			name:   "i borrowed from person",
			clause: "i borrowed 500 from sonu",
			rule:   "i-borrowed-from-person",
			want:   model.Candidate{Amount: -500, Item: "borrowed from", Category: model.CategoryLoan, Remarks: "Borrowed from Sonu", PaidBy: "Sonu"},
		},
		{
			name:   "person borrowed",
			clause: "hari borrowed 400",
			rule:   "person-borrowed",
			want:   model.Candidate{Amount: 400, Item: "lent to", Category: model.CategoryLoan, Remarks: "Lent to Hari", PaidBy: "Hari"},
		},
		{
			name:   "person borrowed uppercase",
			clause: "HARI BORROWED 400",
			rule:   "person-borrowed",
			want:   model.Candidate{Amount: 400, Item: "lent to", Category: model.CategoryLoan, Remarks: "Lent to Hari", PaidBy: "Hari"},
		},
		{
			name:   "institution loan with purpose",
			clause: "150000 borrowed from bank for renovation",
			rule:   "amount-borrowed-from-institution",
			want:   model.Candidate{Amount: -150000, Item: "bank loan", Category: model.CategoryLoan, Remarks: "Borrowed from Bank for Renovation", PaidBy: "Bank"},
		},
		{
			name:   "institution loan verb first",
			clause: "borrowed 50000 from nabil",
			rule:   "borrowed-amount-from-institution",
			want:   model.Candidate{Amount: -50000, Item: "bank loan", Category: model.CategoryLoan, Remarks: "Borrowed from Nabil", PaidBy: "Nabil"},
		},
		{
			name:   "amount borrowed from person",
			clause: "5000 borrowed from sonu",
			rule:   "amount-borrowed-from-person",
			want:   model.Candidate{Amount: -5000, Item: "borrowed from", Category: model.CategoryLoan, Remarks: "Borrowed from Sonu", PaidBy: "Sonu"},
		},
		{
			name:   "borrowed amount from person",
			clause: "borrowed 5000 from sonu",
			rule:   "borrowed-amount-from-person",
			want:   model.Candidate{Amount: -5000, Item: "borrowed from", Category: model.CategoryLoan, Remarks: "Borrowed from Sonu", PaidBy: "Sonu"},
		},
		{
			name:   "amount lent to person",
			clause: "100 lent to rahul",
			rule:   "amount-lent-to-person",
			want:   model.Candidate{Amount: 100, Item: "lent to", Category: model.CategoryLoan, Remarks: "Lent to Rahul", PaidBy: "Rahul"},
		},
		{
			name:   "lent amount to person",
			clause: "lent 100 to rahul",
			rule:   "lent-amount-to-person",
			want:   model.Candidate{Amount: 100, Item: "loan given", Category: model.CategoryLoan, Remarks: "Lent to Rahul", PaidBy: "Rahul"},
		},
		{
			name:   "gave person amount for duration",
			clause: "gave sonu 400 for a week",
			rule:   "gave-person-amount-for-duration",
			want:   model.Candidate{Amount: 400, Item: "loan given", Category: model.CategoryLoan, Remarks: "Lent to Sonu for a week", PaidBy: "Sonu"},
		},
		{
			name:   "gave person amount loan",
			clause: "gave gaurav 300 loan",
			rule:   "gave-person-amount-loan",
			want:   model.Candidate{Amount: 300, Item: "loan", Category: model.CategoryLoan, Remarks: "Loan given to Gaurav", PaidBy: "Gaurav"},
		},
		{
			name:   "loan paid",
			clause: "loan paid 400",
			rule:   "loan-paid-amount",
			want:   model.Candidate{Amount: 400, Item: "loan given", Category: model.CategoryLoan, Remarks: "Loan given"},
		},
		{
			name:   "person paid",
			clause: "hari paid 400",
			rule:   "person-paid-amount",
			want:   model.Candidate{Amount: -400, Item: "received from", Category: model.CategoryLoan, Remarks: "Paid back by Hari", PaidBy: "Hari"},
		},
		{
			name:   "amount paid to person",
			clause: "500 paid to ram",
			rule:   "amount-paid-to-person",
			want:   model.Candidate{Amount: 500, Item: "paid to", Category: model.CategoryLoan, Remarks: "Paid to Ram", PaidBy: "Ram"},
		},
		{
			name:   "paid amount to person",
			clause: "paid 500 to ram",
			rule:   "paid-amount-to-person",
			want:   model.Candidate{Amount: 500, Item: "paid to", Category: model.CategoryLoan, Remarks: "Paid to Ram", PaidBy: "Ram"},
		},
		{
			name:   "amount received from person",
			clause: "100 received from rahul",
			rule:   "amount-received-from-person",
			want:   model.Candidate{Amount: -100, Item: "received from", Category: model.CategoryLoan, Remarks: "Received from Rahul", PaidBy: "Rahul"},
		},
		{
			name:   "got back amount from person",
			clause: "got back 400 from sonu",
			rule:   "received-amount-from-person",
			want:   model.Candidate{Amount: -400, Item: "received from", Category: model.CategoryLoan, Remarks: "Received from Sonu", PaidBy: "Sonu"},
		},
		{
			name:   "received back loan misspelled",
			clause: "recived back loan from hari 100000",
			rule:   "received-loan-from-person",
			want:   model.Candidate{Amount: -100000, Item: "loan transaction", Category: model.CategoryLoan, Remarks: "Loan transaction with Hari", PaidBy: "Hari"},
		},
		{
			name:   "debt statement",
			clause: "hari owes 500 to ram",
			rule:   "person-owes-person",
			want:   model.Candidate{Amount: 500, Item: "hari owes ram", Category: model.CategoryLoan, Remarks: "Hari owes Ram", PaidBy: "Hari"},
		},
		{
			name:   "debt statement misspelled",
			clause: "sita owz 200 to gita",
			rule:   "person-owes-person",
			want:   model.Candidate{Amount: 200, Item: "sita owes gita", Category: model.CategoryLoan, Remarks: "Sita owes Gita", PaidBy: "Sita"},
		},
		{
			name:   "got salary today",
			clause: "got salary today 50000",
			rule:   "got-salary",
			want:   model.Candidate{Amount: -50000, Item: "salary", Category: model.CategoryIncome, Remarks: "Got Salary Today"},
		},
		{
			name:   "salary received",
			clause: "salary 100000 received",
			rule:   "salary-amount-received",
			want:   model.Candidate{Amount: -100000, Item: "salary", Category: model.CategoryIncome, Remarks: "Salary received"},
		},
		{
			name:   "bonus",
			clause: "bonus 5000",
			rule:   "income-amount",
			want:   model.Candidate{Amount: -5000, Item: "bonus", Category: model.CategoryIncome, Remarks: "Bonus received"},
		},
		{
			name:   "gift for person",
			clause: "bought gift for sonu 400",
			rule:   "gift-for-person",
			want:   model.Candidate{Amount: 400, Item: "gift", Category: model.CategoryShopping, Remarks: "Gift for Sonu"},
		},
		{
			name:   "bare gift for person",
			clause: "gift for sonu 400",
			rule:   "gift-for-person",
			want:   model.Candidate{Amount: 400, Item: "gift", Category: model.CategoryShopping, Remarks: "Gift for Sonu"},
		},
		{
			name:   "amount on item",
			clause: "500 on biryani",
			rule:   "amount-for-item",
			want:   model.Candidate{Amount: 500, Item: "biryani", Category: model.CategoryFood, Remarks: "Spent on Biryani"},
		},
		{
			name:   "amount spend on item",
			clause: "150 spend on momo",
			rule:   "amount-spent-on-item",
			want:   model.Candidate{Amount: 150, Item: "momo", Category: model.CategoryFood, Remarks: "Momo"},
		},
		{
			name:   "spent amount on item",
			clause: "spent 100 on tea",
			rule:   "spent-or-paid-amount-on-item",
			want:   model.Candidate{Amount: 100, Item: "tea", Category: model.CategoryFood, Remarks: "Tea"},
		},
		{
			name:   "item amount paid by person",
			clause: "rent 20000 paid by sonu",
			rule:   "item-amount-paid-by-person",
			want:   model.Candidate{Amount: 20000, Item: "rent", Category: model.CategoryRent, Remarks: "Rent - Paid by Sonu", PaidBy: "Sonu"},
		},
		{
			name:   "item costs amount",
			clause: "fan cost 4000",
			rule:   "item-costs-amount",
			want:   model.Candidate{Amount: 4000, Item: "fan", Category: model.CategoryElectronics, Remarks: "Fan"},
		},
		{
			name:   "item for context amount",
			clause: "tea for ram 100",
			rule:   "item-for-context-amount",
			want:   model.Candidate{Amount: 100, Item: "tea for ram", Category: model.CategoryFood, Remarks: "Spent on Tea For Ram"},
		},
		{
			name:   "item paid by person",
			clause: "drinks sita 500",
			rule:   "item-person-amount",
			want:   model.Candidate{Amount: 500, Item: "drinks", Category: model.CategoryFood, Remarks: "Drinks - Paid by Sita", PaidBy: "Sita"},
		},
		{
			name:   "compound item is not a person",
			clause: "water jar 200",
			rule:   "item-person-amount",
			want:   model.Candidate{Amount: 200, Item: "water jar", Category: model.CategoryFood, Remarks: "Spent on Water Jar"},
		},
		{
			name:   "item amount",
			clause: "grocery 300",
			rule:   "item-amount",
			want:   model.Candidate{Amount: 300, Item: "grocery", Category: model.CategoryGroceries, Remarks: "Grocery: Grocery"},
		},
		{
			name:   "bare loan amount",
			clause: "loan 500",
			rule:   "item-amount",
			want:   model.Candidate{Amount: 500, Item: "loan given", Category: model.CategoryLoan, Remarks: "Loan given"},
		},
		{
			name:   "institution fails person check and falls through",
			clause: "paid loan to bank 400",
			rule:   "item-person-amount",
			want:   model.Candidate{Amount: 400, Item: "loan to bank", Category: model.CategoryLoan, Remarks: "Loan To Bank"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := c.Match(tt.clause)
			require.True(t, ok)

			rule, _ := c.Explain(tt.clause)
			assert.Equal(t, tt.rule, rule)

			tt.want.Resolution = model.Resolved{}
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestDefaultRules_Ambiguous(t *testing.T) {
	c := newTestCascade(t)

	tests := []struct {
		name       string
		clause     string
		paidBy     string
		categories []string
		amount     int64
		direction  model.Direction
	}{
		{
			name:       "i gave person",
			clause:     "i gave sonu 500",
			amount:     500,
			paidBy:     "Sonu",
			categories: []string{model.CategoryLoan, model.CategoryGifts},
			direction:  model.DirectionOut,
		},
		{
			name:       "person gave me",
			clause:     "hari gave me 1000",
			amount:     -1000,
			paidBy:     "Hari",
			categories: []string{model.CategoryGiftIncome, model.CategoryLoan},
			direction:  model.DirectionIn,
		},
		{
			name:       "got gift from person",
			clause:     "got gift from sonu 4000",
			amount:     -4000,
			paidBy:     "Sonu",
			categories: []string{model.CategoryGiftIncome, model.CategoryLoan},
			direction:  model.DirectionIn,
		},
		{
			name:       "received money amount from person",
			clause:     "received money 2000 from hari",
			amount:     -2000,
			paidBy:     "Hari",
			categories: []string{model.CategoryGiftIncome, model.CategoryLoan},
			direction:  model.DirectionIn,
		},
		{
			name:       "amount from person",
			clause:     "500 from sonu",
			amount:     -500,
			paidBy:     "Sonu",
			categories: []string{model.CategoryLoan, model.CategoryGiftIncome, model.CategoryLoan},
			direction:  model.DirectionIn,
		},
		{
			name:       "amount to person",
			clause:     "500 to sonu",
			amount:     500,
			paidBy:     "Sonu",
			categories: []string{model.CategoryLoan, model.CategoryLoan, model.CategoryGifts},
			direction:  model.DirectionOut,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := c.Match(tt.clause)
			require.True(t, ok)
			require.True(t, got.NeedsConfirmation())

			assert.Equal(t, tt.amount, got.Amount)
			assert.Equal(t, tt.paidBy, got.PaidBy)
			assert.Equal(t, model.CategoryOther, got.Category)

			opts := got.Options()
			require.Len(t, opts, len(tt.categories))
			for i, opt := range opts {
				assert.Equal(t, tt.categories[i], opt.Category)
				assert.NotEmpty(t, opt.Label)
				assert.Contains(t, opt.Remarks, tt.paidBy)
				assert.Equal(t, tt.direction, opt.Direction)
			}
		})
	}
}

func TestDefaultRules_SignInvariant(t *testing.T) {
	c := newTestCascade(t)

	outflows := []string{
		"paid loan to hari 400",
		"repaid hari 500",
		"paid 100000 to bank",
		"hari borrowed 400",
		"100 lent to rahul",
		"lent 100 to rahul",
		"gave gaurav 300 loan",
		"500 paid to ram",
		"hari owes 500 to ram",
		"i gave sonu 500",
		"500 to sonu",
	}
	inflows := []string{
		"paid to hari his loan 500",
		"received loan back from hari 500",
		"hari lent me 400",
		"i borrowed 500 from sonu",
		"150000 borrowed from bank for renovation",
		"hari paid 400",
		"got 400 from ram",
		"got salary 30000",
		"refund 200",
		"hari sent me 700",
		"got cash from sita 900",
		"500 from sonu",
	}

	for _, clause := range outflows {
		t.Run("out "+clause, func(t *testing.T) {
			got, ok := c.Match(clause)
			require.True(t, ok)
			assert.Positive(t, got.Amount)
			assert.False(t, got.IsIncome())
		})
	}
	for _, clause := range inflows {
		t.Run("in "+clause, func(t *testing.T) {
			got, ok := c.Match(clause)
			require.True(t, ok)
			assert.Negative(t, got.Amount)
			assert.True(t, got.IsIncome())
		})
	}
}

func TestDefaultRules_SpentOrPaidOnFor(t *testing.T) {
	c := newTestCascade(t)

	tests := []struct {
		clause string
		want   model.Candidate
	}{
		{clause: "spent 200 on lunch", want: model.Candidate{Amount: 200, Item: "lunch", Category: model.CategoryFood, Remarks: "Lunch"}},
		{clause: "spent 200 for lunch", want: model.Candidate{Amount: 200, Item: "lunch", Category: model.CategoryFood, Remarks: "Lunch"}},
		{clause: "paid 500 on biryani", want: model.Candidate{Amount: 500, Item: "biryani", Category: model.CategoryFood, Remarks: "Biryani"}},
		{clause: "paid 500 for the biryani", want: model.Candidate{Amount: 500, Item: "biryani", Category: model.CategoryFood, Remarks: "Biryani"}},
		{clause: "spend 300 on petrol", want: model.Candidate{Amount: 300, Item: "petrol", Category: model.CategoryTransport, Remarks: "Petrol"}},
		{clause: "payed 150 for movie", want: model.Candidate{Amount: 150, Item: "movie", Category: model.CategoryEntertainment, Remarks: "Movie"}},
	}

	for _, tt := range tests {
		t.Run(tt.clause, func(t *testing.T) {
			got, ok := c.Match(tt.clause)
			require.True(t, ok)

			rule, _ := c.Explain(tt.clause)
			assert.Equal(t, "spent-or-paid-amount-on-item", rule)

			tt.want.Resolution = model.Resolved{}
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestDefaultRules_Fallbacks(t *testing.T) {
	c := newTestCascade(t)

	t.Run("bare number is left unmatched", func(t *testing.T) {
		for _, clause := range []string{"500", "1500", " 42 "} {
			got, ok := c.Match(clause)
			assert.False(t, ok, clause)
			assert.Empty(t, got.Category, clause)
		}
	})

	t.Run("first number with surrounding words", func(t *testing.T) {
		got, ok := c.Match("xyz 40 abc 60")
		require.True(t, ok)
		assert.Equal(t, int64(40), got.Amount)
		assert.Equal(t, "xyz abc", got.Item)
		name, _ := c.Explain("xyz 40 abc 60")
		assert.Equal(t, "first-number", name)
	})

	t.Run("no digits", func(t *testing.T) {
		_, ok := c.Match("hello")
		assert.False(t, ok)
	})

	t.Run("malformed amount", func(t *testing.T) {
		_, ok := c.Match("99999999999999999999 on tea")
		assert.False(t, ok)
	})

	t.Run("resolved candidate cannot be resolved again", func(t *testing.T) {
		got, ok := c.Match("hari borrowed 400")
		require.True(t, ok)
		_, err := got.Resolve(0)
		assert.Error(t, err)
	})
}
