package pathutil_test

import (
	"fmt"

	"speed/internal/handler/http/pathutil"
)

func ExampleNormalizePath() {
	fmt.Println(pathutil.NormalizePath("/articles/id/0b6f5e8e-3c1d-4f6a-9a2b-5d4e3c2b1a09"))
	fmt.Println(pathutil.NormalizePath("/articles/doi/10.1145/3368089.3409742"))
	fmt.Println(pathutil.NormalizePath("/moderator/index"))
	// Output:
	// /articles/id/:id
	// /articles/doi/:doi
	// /moderator/index
}
