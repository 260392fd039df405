// Package settings loads, overrides, and applies HTTP server settings.
//
// A settings file is a TOML document (see [DefaultTemplate]) describing where
// the server binds and how it is tuned. The resolution pipeline is:
//  1. [Load] (or [LoadLayered]) parses the file(s) into a typed
//     [BasicSettings] value, applying documented defaults for absent keys.
//  2. Zero or more environment overrides replace individual fields:
//     [OverrideFieldWithEnvVar] for single fields, or
//     [BasicSettings.OverrideFromEnv] for a whole prefixed overlay.
//  3. [BasicSettings.Apply] maps the resolved value onto a server under
//     construction through the [Builder] capability interface.
//
// After step 2 a settings value is treated as immutable and may be shared by
// any number of goroutines for the rest of the process lifetime.
//
// Errors fall into four groups, all distinguishable with errors.Is/As:
// unreadable files (wrapped *fs.PathError), malformed TOML (wrapped
// *toml.DecodeError), semantically invalid documents ([ErrNoHosts],
// [*InvalidValueError]), and unparsable environment overrides
// ([*OverrideError]). A failure in any group is terminal for that call;
// nothing is logged, retried, or silently defaulted.
package settings
