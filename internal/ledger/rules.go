package ledger

import "fmt"

// AccountType selects the sign and category convention of a ledger.
type AccountType string

const (
	AccountCustomer    AccountType = "customer"
	AccountSupplier    AccountType = "supplier"
	AccountBankAccount AccountType = "bank_account"
	AccountTank        AccountType = "tank"
)

// Sign is the direction in which an event kind moves the running balance.
// SignNone marks a kind that does not belong to the account type.
type Sign int

const (
	SignNone     Sign = 0
	SignIncrease Sign = 1
	SignDecrease Sign = -1
)

// Category names used by the built-in rules.
const (
	CategoryBilled        = "totalBilled"
	CategoryPaid          = "totalPaid"
	CategoryPurchases     = "totalPurchases"
	CategoryFuelPurchases = "totalFuelPurchases"
	CategoryDeposits      = "totalDeposits"
	CategoryWithdrawals   = "totalWithdrawals"
	CategoryAdded         = "totalAdded"
	CategoryRemoved       = "totalRemoved"
	CategoryAdjusted      = "totalAdjusted"
	CategoryOther         = "totalOther"
)

// SignRule maps an event kind to its balance direction.
type SignRule func(kind EventKind) Sign

// CategoryRule names the total an event's gross amount is added to.
type CategoryRule func(event Event) string

// Rules parameterizes the engine for one account type. Categories lists the
// totals every summary reports, zero-filled when nothing fell into them.
type Rules struct {
	Account    AccountType
	Sign       SignRule
	Category   CategoryRule
	Categories []string
}

// CustomerRules: a positive balance is what the customer owes the station.
// Bills raise it, payments received lower it.
func CustomerRules() Rules {
	return fromTable(AccountCustomer,
		map[EventKind]Sign{KindBill: SignIncrease, KindPayment: SignDecrease},
		map[EventKind]string{KindBill: CategoryBilled, KindPayment: CategoryPaid},
		CategoryBilled, CategoryPaid)
}

// SupplierRules: a positive balance is what the station owes the supplier,
// i.e. opening - totalPaid + totalPurchases. This is the reverse polarity of
// the customer ledger.
func SupplierRules() Rules {
	return fromTable(AccountSupplier,
		map[EventKind]Sign{KindPurchase: SignIncrease, KindFuelPurchase: SignIncrease, KindPayment: SignDecrease},
		map[EventKind]string{KindPurchase: CategoryPurchases, KindFuelPurchase: CategoryFuelPurchases, KindPayment: CategoryPaid},
		CategoryPurchases, CategoryFuelPurchases, CategoryPaid)
}

// BankAccountRules: the balance is the funds held at the bank.
func BankAccountRules() Rules {
	return fromTable(AccountBankAccount,
		map[EventKind]Sign{KindDeposit: SignIncrease, KindWithdrawal: SignDecrease},
		map[EventKind]string{KindDeposit: CategoryDeposits, KindWithdrawal: CategoryWithdrawals},
		CategoryDeposits, CategoryWithdrawals)
}

// TankRules: the balance is litres in stock.
func TankRules() Rules {
	return fromTable(AccountTank,
		map[EventKind]Sign{KindStockAddition: SignIncrease, KindStockRemoval: SignDecrease},
		map[EventKind]string{KindStockAddition: CategoryAdded, KindStockRemoval: CategoryRemoved},
		CategoryAdded, CategoryRemoved)
}

// RulesFor returns the built-in rules of an account type.
func RulesFor(account AccountType) (Rules, error) {
	switch account {
	case AccountCustomer:
		return CustomerRules(), nil
	case AccountSupplier:
		return SupplierRules(), nil
	case AccountBankAccount:
		return BankAccountRules(), nil
	case AccountTank:
		return TankRules(), nil
	default:
		return Rules{}, fmt.Errorf("%w: unknown account type %q", ErrMissingRule, account)
	}
}

// fromTable builds rules from fixed lookup tables. Adjustments are accepted by
// every account type and keep the sign they were recorded with.
func fromTable(account AccountType, signs map[EventKind]Sign, categories map[EventKind]string, names ...string) Rules {
	return Rules{
		Account: account,
		Sign: func(kind EventKind) Sign {
			if kind == KindAdjustment {
				return SignIncrease
			}
			return signs[kind]
		},
		Category: func(event Event) string {
			if event.Kind == KindAdjustment {
				return CategoryAdjusted
			}
			if name, ok := categories[event.Kind]; ok {
				return name
			}
			return CategoryOther
		},
		Categories: append(names, CategoryAdjusted),
	}
}
