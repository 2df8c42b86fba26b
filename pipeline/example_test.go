package pipeline_test

import (
	"context"
	"fmt"

	"github.com/skita-dev/skita/crypto/kdf"
	"github.com/skita-dev/skita/pipeline"
)

func ExampleEncrypt() {
	password := []byte("correct horse battery staple")

	// Encrypt a document under a password. Production callers should keep
	// the default KDF parameters; they are lowered here to keep the
	// example fast.
	res, err := pipeline.Encrypt(context.Background(), []byte("attack at dawn"), "orders.txt", password,
		pipeline.WithKDFParams(kdf.Params{MemoryKiB: 64, Iterations: 1, Parallelism: 1}))
	if err != nil {
		panic(err)
	}

	dec, err := pipeline.Decrypt(context.Background(), res.Container, password)
	if err != nil {
		panic(err)
	}

	fmt.Println(res.OutputFilename)
	fmt.Println(dec.OriginalFilename)
	fmt.Println(string(dec.Plaintext))
	fmt.Println(dec.Verified)
	// Output:
	// orders.txt.skita
	// orders.txt
	// attack at dawn
	// true
}
