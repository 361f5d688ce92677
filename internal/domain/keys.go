package domain

// KeyPrefix namespaces every key cinedex writes to a shared store.
const KeyPrefix = "cinedex:"
