// Command rangebench times hand-written loops against seqs pipelines over a
// corpus of engine objects.
package main

func main() {
	Execute()
}
