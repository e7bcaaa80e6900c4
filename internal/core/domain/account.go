package domain

// Account is a bank account the access token can see.
type Account struct {
	AccountUID       string `json:"account_uid"`
	AccountHolderUID string `json:"account_holder_uid,omitempty"`
	DefaultCategory  string `json:"default_category"`
	Currency         string `json:"currency"`
	Name             string `json:"name,omitempty"`
}

// SavingsGoal is a savings space attached to an account.
type SavingsGoal struct {
	SavingsGoalUID string  `json:"savings_goal_uid"`
	Name           string  `json:"name"`
	Target         *Amount `json:"target,omitempty"`
	TotalSaved     *Amount `json:"total_saved,omitempty"`
	State          string  `json:"state,omitempty"`
}

// FindAccount returns the account with the given uid, or nil.
func FindAccount(accounts []Account, accountUID string) *Account {
	for i := range accounts {
		if accounts[i].AccountUID == accountUID {
			return &accounts[i]
		}
	}
	return nil
}

// FindGoalByUID returns the goal with the given uid, or nil.
func FindGoalByUID(goals []SavingsGoal, goalUID string) *SavingsGoal {
	for i := range goals {
		if goals[i].SavingsGoalUID == goalUID {
			return &goals[i]
		}
	}
	return nil
}

// FindGoalByName returns the first goal whose name matches exactly, or nil.
func FindGoalByName(goals []SavingsGoal, name string) *SavingsGoal {
	for i := range goals {
		if goals[i].Name == name {
			return &goals[i]
		}
	}
	return nil
}
