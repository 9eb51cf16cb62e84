package handlers

// Notices shown to users. They never carry technical detail.
const (
	msgUsernameInvalid   = "Username should only contain alphanumeric characters."
	msgUsernameTaken     = "Username is already in use, please try another choice."
	msgEmailInvalid      = "Email is invalid."
	msgEmailTaken        = "Email is in use. Please use another one."
	msgRegisterTooShort  = "Password is too short. Please try again."
	msgRegistered        = "Your account has been created! Please check your email!"
	msgAlreadyActivated  = "User already activated!"
	msgActivated         = "Account has been activated successfully!"
	msgMissingLogin      = "Please fill in the username and password."
	msgBadCredentials    = "Invalid credentials, please try again."
	msgInactive          = "Account is not active, please check your email."
	msgWelcome           = "Welcome, %s! You are now logged in"
	msgLoggedOut         = "You have successfully logged out!"
	msgResetBadEmail     = "Please enter a valid email"
	msgResetNoSuchEmail  = "This email address does not exist. Please try another email."
	msgResetSent         = "We have sent you an email to reset your password!"
	msgResetLinkInvalid  = "Password link is invalid. Please request a new link."
	msgResetTooShort     = "Password is too short. Please use more than 6 characters."
	msgResetMismatch     = "Password mismatch. Please try again."
	msgPasswordSet       = "Password was set successfully!"
	msgSomethingWrong    = "Something went wrong. Please try again!"
	msgAmountRequired    = "Please enter an amount."
	msgDescriptionNeeded = "Please enter a description."
	msgAmountInvalid     = "Please enter a valid amount."
	msgDateInvalid       = "Please enter a valid date."
	msgCategoryInvalid   = "Please choose a %s from the list."
	msgCurrencyInvalid   = "Please choose a currency from the list."
	msgPreferencesSaved  = "Changes saved"
)

// ledgerNotices holds the per-ledger success notices.
type ledgerNotices struct {
	created string
	updated string
	deleted string
}

var expenseNotices = ledgerNotices{
	created: "Expense has been created successfully!",
	updated: "Expense has been updated successfully!",
	deleted: "Expense deleted!",
}

var incomeNotices = ledgerNotices{
	created: "Record has been created successfully!",
	updated: "Record has been updated successfully!",
	deleted: "Record deleted!",
}
