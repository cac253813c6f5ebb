// Command ophite exposes the ophite packages on the command line.
package main

func main() {
	execute()
}
