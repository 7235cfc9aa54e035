// Package selector chooses which synthesis method variant best answers a
// question and classifies the chosen route.
//
// Two implementations are provided. LLMSelector asks a language model to
// pick and classify; RuleSelector applies deterministic heuristics over the
// variant summaries. Both satisfy the same contract: Decide always returns
// a usable Decision pointing at a real variant. When the model call fails
// or returns garbage, LLMSelector falls back to a conservative default and
// reports the failure through the error value so the caller can record it
// without losing the answer.
package selector
