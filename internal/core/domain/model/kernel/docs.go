// Package kernel contains the shared value objects of the domain model:
// UUID identities and the Tenant context that scopes every operation to one
// franchise. These types are immutable, validated at construction and carry
// no behavior beyond equality and accessors, so every aggregate package can
// depend on them without coupling to infrastructure.
package kernel
