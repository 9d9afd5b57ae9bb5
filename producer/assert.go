package producer

import "github.com/kbukum/pariter/errors"

func checkSplit(op string, index, length int) {
	if index < 0 || index > length {
		panic(errors.ContractViolation(op, "split index out of range").
			WithDetail("index", index).
			WithDetail("len", length))
	}
}

func checkProduce(op string, length int) {
	if length <= 0 {
		panic(errors.ContractViolation(op, "produce on exhausted producer").
			WithDetail("len", length))
	}
}
