// Package services – user-facing result messages.
//
// This file centralizes the exact message strings the mutation pipeline and
// the credential gate surface to callers, so services return them
// consistently and tests can pin them. Gateway faults are logged with their
// full cause server-side; only these generic strings reach the end user.
package services

// InvoicesPath is the invoice list view: the redirect target of successful
// create/update mutations and the path whose cached view every invoice
// mutation invalidates.
const InvoicesPath = "/dashboard/invoices"

const (
	// MsgMissingFields summarizes a failed invoice validation. The update
	// path reuses the create wording on purpose; see DESIGN.md.
	MsgMissingFields = "Missing Fields. Failed to Create Invoice."

	// MsgCreateFailed is returned when the persistence gateway rejects an
	// insert. The underlying fault is logged, never surfaced.
	MsgCreateFailed = "Database Error: Failed to Create Invoice."

	// MsgUpdateFailed is the update-path counterpart of MsgCreateFailed.
	MsgUpdateFailed = "Database Error: Failed to Update Invoice."

	// MsgDeleteFailed is the delete-path counterpart of MsgCreateFailed.
	MsgDeleteFailed = "Database Error: Failed to Delete Invoice."

	// MsgDeleted confirms a completed (or already-completed) delete.
	MsgDeleted = "Deleted Invoice."

	// MsgInvalidCredentials is shown for any rejected credential check.
	MsgInvalidCredentials = "Invalid credentials."

	// MsgSomethingWentWrong is shown for authentication failures of any
	// other recognized kind.
	MsgSomethingWentWrong = "Something went wrong."
)
