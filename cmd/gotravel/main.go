// Package main is the entry point for the gotravel CLI.
// Its sole responsibility is dispatching to the cobra command tree.
// No business logic belongs here.
package main

func main() {
	Execute()
}
