// Command lvlabel labels connected components in binary images, either
// textual '0'/'1' grids or raster image files.
package main

func main() {
	Execute()
}
