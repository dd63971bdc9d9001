// Package ordering contains the aggregate records of the order-taking
// domain: PersonalName, CustomerInfo, and Address. They are pure
// compositions of already-validated values from the valueobject
// catalog and perform no validation of their own; every field is
// constructed through its factory and the first failure aborts the
// whole aggregate. Callers who want to collect multiple field errors
// instead call the field factories directly.
package ordering
