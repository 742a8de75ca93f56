// Package prompt sequences the user prompts of one dispatch cycle: template
// choice, then name, then target folder. The prompts themselves are supplied
// by a Prompter so the sequence runs the same against a terminal or a test
// script. Dismissing any prompt cancels the cycle and resets the sequencer.
package prompt
