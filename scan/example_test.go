package scan_test

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/ardnew/vetvar/scan"
)

func Example() {
	dir, err := os.MkdirTemp("", "vetvar")
	if err != nil {
		fmt.Println(err)

		return
	}
	defer os.RemoveAll(dir)

	path := filepath.Join(dir, "app.conf")
	contents := "# application settings\nHOST=example.test\nPORT=8080 # tcp\n"

	if err := os.WriteFile(path, []byte(contents), 0o600); err != nil {
		fmt.Println(err)

		return
	}

	imp := scan.Make(scan.WithReporter(scan.Discard))

	res, err := imp.One(path, "PORT", `\d+`)
	if err != nil {
		fmt.Println(err)

		return
	}

	fmt.Println(res.Found, res.Value)
	// Output: true 8080
}

func ExampleImporter_Require() {
	dir, err := os.MkdirTemp("", "vetvar")
	if err != nil {
		fmt.Println(err)

		return
	}
	defer os.RemoveAll(dir)

	path := filepath.Join(dir, "app.conf")

	if err := os.WriteFile(path, []byte("HOST=example.test\n"), 0o600); err != nil {
		fmt.Println(err)

		return
	}

	var rec scan.Recorder
	imp := scan.Make(scan.WithReporter(&rec))

	_, err = imp.Require(path, []string{"HOST", "PORT"}, `\S+`)

	fmt.Println(err != nil)
	fmt.Println(rec.Warnings[0] == "failed to import PORT from "+path)
	// Output:
	// true
	// true
}
