// Package models holds the Workers AI model catalog and neuron cost
// estimation.
//
// # Catalog
//
// The catalog carries a curated set of commonly used models with
// hand-written descriptions and input schemas. Lookups for model IDs
// outside the curated set never fail: the catalog synthesizes an entry
// by inferring the model's category from keywords in its ID, so any
// "@cf/..." model a client knows about can be called and read as a
// resource.
//
//	catalog := models.NewCatalog()
//	info, _ := catalog.Get("@cf/meta/llama-3.1-8b-instruct")
//
// # Categories
//
// Every model belongs to exactly one Category (llm, embedding, image,
// audio). InferCategory classifies an ID by keyword lists checked in
// priority order, so a name matching both "llama" and "embed" lands in
// the LLM bucket.
//
// # Neuron Estimation
//
// EstimateNeurons approximates Cloudflare's neuron billing from the
// request input when the API response does not report usage. The
// formulas are rough (4 bytes per token) and only meant to give
// clients an order-of-magnitude cost signal.
package models
