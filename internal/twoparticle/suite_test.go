package twoparticle

import (
	"testing"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

func TestTwoParticle(t *testing.T) {
	RegisterFailHandler(Fail)
	RunSpecs(t, "TwoParticle Suite")
}
