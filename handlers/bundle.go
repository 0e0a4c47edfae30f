package handlers

import (
	accountRepoPkg "nestora/database/repository/account"
)

// HandlerBundle groups all endpoint handlers into one struct.
type HandlerBundle struct {
	// AccountRepo is shared with the auth middleware for token checks.
	AccountRepo accountRepoPkg.AccountRepository

	Accounts    *AccountHandler
	Properties  *PropertyHandler
	Inspections *InspectionHandler
	Maintenance *MaintenanceHandler
	Feed        *FeedHandler
}
