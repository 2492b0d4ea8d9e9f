// Package llm provides the hosted-model fallback for expense text the rule
// parser could not categorize. It supports Gemini and OpenAI-compatible
// providers, with retry on rate limits, request rate limiting, and response
// caching.
package llm
