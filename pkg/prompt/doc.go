// Package prompt fills a resolved lead form interactively on the terminal.
package prompt
