package mutagens

// RemoveSemicolons deletes every statement terminator.
var RemoveSemicolons = deleteAll("remove-semicolons", "delete every ';'", `;`)

// RemoveOpenParens deletes every opening parenthesis.
var RemoveOpenParens = deleteAll("remove-open-parens", "delete every '('", `\(`)

// RemoveClosingBraces deletes every closing brace.
var RemoveClosingBraces = deleteAll("remove-closing-braces", "delete every '}'", `\}`)

// RemoveColons deletes every colon, breaking object literals and ternaries.
var RemoveColons = deleteAll("remove-colons", "delete every ':'", `:`)

// DoubleToSingleQuotes swaps every double quote for a single quote.
var DoubleToSingleQuotes = replaceAll("double-to-single-quotes", `replace every '"' with "'"`, `"`, `'`)
