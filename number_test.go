package numlist_test

import (
	"math/big"

	"github.com/mgnsk/numlist"
	. "github.com/mgnsk/numlist/internal/testing"
	"github.com/mgnsk/numlist/list"
	. "github.com/onsi/ginkgo"
	. "github.com/onsi/gomega"
)

// expectConsistent asserts the list invariants of n and that its value
// matches its digits.
func expectConsistent(n *numlist.Number) {
	g := NewWithT(GinkgoT())

	ExpectValidList(g, numlist.DigitList(n))

	v, err := numlist.ValueFromDigits(n.Digits(), n.Base())
	g.Expect(err).NotTo(HaveOccurred())
	g.Expect(n.Value().String()).To(Equal(v.String()))
}

var _ = Describe("constructing numbers", func() {
	for _, topo := range Topologies {
		When("the topology is "+topo.String(), func() {
			Specify("a decimal string yields its digits", func() {
				n := parse(topo, "173")

				expectConsistent(n)
				Expect(n.Digits()).To(Equal(digits(1, 7, 3)))
				Expect(n.DecimalString()).To(Equal("173"))
				Expect(n.String()).To(Equal("173"))
				Expect(n.Base()).To(Equal(numlist.Decimal))
			})

			Specify("surrounding whitespace is trimmed", func() {
				n := parse(topo, " \t42\n")

				expectConsistent(n)
				Expect(n.Digits()).To(Equal(digits(4, 2)))
			})

			Specify("zero yields a single zero digit", func() {
				n := parse(topo, "0")

				expectConsistent(n)
				Expect(n.Digits()).To(Equal(digits(0)))
				Expect(n.IsEmpty()).To(BeFalse())
			})

			Specify("invalid input yields an empty number", func() {
				for _, s := range []string{"", "   ", "-5", "+3", "12a", "1.5", "١٢"} {
					n := parse(topo, s)

					expectConsistent(n)
					Expect(n.IsEmpty()).To(BeTrue(), "input %q", s)
					Expect(n.Len()).To(BeZero())
					Expect(n.DecimalString()).To(Equal("0"))
					Expect(n.String()).To(BeEmpty())
				}
			})

			Specify("a negative value is treated as zero", func() {
				n := numlist.FromValue(big.NewInt(-3), numlist.WithConfig(decimalConfig(topo, numlist.Add)))

				expectConsistent(n)
				Expect(n.Digits()).To(Equal(digits(0)))
			})
		})
	}

	Specify("values beyond 64 bits are kept exactly", func() {
		const s = "123456789012345678901234567890123456789"
		n := parse(list.CircularDoubly, s)

		expectConsistent(n)
		Expect(n.DecimalString()).To(Equal(s))
		Expect(n.String()).To(Equal(s))
	})

	Specify("the default configuration is used without options", func() {
		n := numlist.Parse("8")

		Expect(n.Config()).To(Equal(numlist.DefaultConfig))
		Expect(n.Base()).To(Equal(numlist.Octal))
		Expect(n.Digits()).To(Equal(digits(1, 0)))
	})

	Specify("an invalid configuration panics", func() {
		Expect(func() {
			numlist.WithConfig(numlist.Config{PrimaryBase: 7, AdditionalBase: numlist.Binary})
		}).To(Panic())
	})
})

var _ = Describe("index operations", func() {
	for _, topo := range Topologies {
		When("the topology is "+topo.String(), func() {
			var n *numlist.Number

			BeforeEach(func() {
				n = parse(topo, "173")
			})

			AfterEach(func() {
				expectConsistent(n)
			})

			Specify("digits are read by index", func() {
				d, ok := n.Get(1)
				Expect(ok).To(BeTrue())
				Expect(d).To(Equal(numlist.Digit(7)))

				_, ok = n.Get(3)
				Expect(ok).To(BeFalse())

				_, ok = n.Get(-1)
				Expect(ok).To(BeFalse())
			})

			Specify("setting a digit updates the value", func() {
				old, err := n.Set(2, 9)
				Expect(err).NotTo(HaveOccurred())
				Expect(old).To(Equal(numlist.Digit(3)))
				Expect(n.DecimalString()).To(Equal("179"))
			})

			Specify("setting an out of base digit is rejected", func() {
				_, err := n.Set(0, 10)
				Expect(err).To(MatchError(numlist.ErrDigitOutOfRange))
				Expect(n.DecimalString()).To(Equal("173"))
			})

			Specify("setting an out of range index is rejected", func() {
				_, err := n.Set(3, 1)
				Expect(err).To(MatchError(numlist.ErrIndexOutOfRange))
				Expect(n.DecimalString()).To(Equal("173"))
			})

			Specify("appending updates the value", func() {
				Expect(n.Add(5)).To(Succeed())
				Expect(n.DecimalString()).To(Equal("1735"))

				Expect(n.Add(10)).To(MatchError(numlist.ErrDigitOutOfRange))
				Expect(n.DecimalString()).To(Equal("1735"))
			})

			Specify("inserting at the front, middle and back", func() {
				Expect(n.InsertAt(0, 9)).To(Succeed())
				Expect(n.Digits()).To(Equal(digits(9, 1, 7, 3)))

				Expect(n.InsertAt(2, 0)).To(Succeed())
				Expect(n.Digits()).To(Equal(digits(9, 1, 0, 7, 3)))

				Expect(n.InsertAt(4, 5)).To(Succeed())
				Expect(n.Digits()).To(Equal(digits(9, 1, 0, 7, 5, 3)))

				Expect(n.InsertAt(100, 4)).To(Succeed())
				Expect(n.InsertAt(-100, 2)).To(Succeed())
				Expect(n.Digits()).To(Equal(digits(2, 9, 1, 0, 7, 5, 3, 4)))
				Expect(n.DecimalString()).To(Equal("29107534"))
			})

			Specify("inserting into an empty number", func() {
				n = parse(topo, "")

				Expect(n.InsertAt(3, 4)).To(Succeed())
				Expect(n.Digits()).To(Equal(digits(4)))
			})

			Specify("removing by index", func() {
				d, ok := n.RemoveAt(1)
				Expect(ok).To(BeTrue())
				Expect(d).To(Equal(numlist.Digit(7)))
				Expect(n.DecimalString()).To(Equal("13"))

				_, ok = n.RemoveAt(2)
				Expect(ok).To(BeFalse())

				n.RemoveAt(0)
				n.RemoveAt(0)
				Expect(n.IsEmpty()).To(BeTrue())
				Expect(n.DecimalString()).To(Equal("0"))
			})

			Specify("bulk appends are all or nothing", func() {
				Expect(n.AddAll(4, 12, 5)).To(MatchError(numlist.ErrDigitOutOfRange))
				Expect(n.Digits()).To(Equal(digits(1, 7, 3)))

				Expect(n.AddAll(4, 5)).To(Succeed())
				Expect(n.Digits()).To(Equal(digits(1, 7, 3, 4, 5)))
			})

			Specify("bulk inserts clamp the index", func() {
				Expect(n.AddAllAt(1, 0, 0)).To(Succeed())
				Expect(n.Digits()).To(Equal(digits(1, 0, 0, 7, 3)))

				Expect(n.AddAllAt(-4, 2)).To(Succeed())
				Expect(n.AddAllAt(40, 8)).To(Succeed())
				Expect(n.Digits()).To(Equal(digits(2, 1, 0, 0, 7, 3, 8)))
			})

			Specify("clearing empties the number", func() {
				n.Clear()
				Expect(n.IsEmpty()).To(BeTrue())
				Expect(n.DecimalString()).To(Equal("0"))

				Expect(n.Add(6)).To(Succeed())
				Expect(n.DecimalString()).To(Equal("6"))
			})
		})
	}
})

var _ = Describe("searching digits", func() {
	for _, topo := range Topologies {
		When("the topology is "+topo.String(), func() {
			var n *numlist.Number

			BeforeEach(func() {
				n = parse(topo, "3173")
			})

			AfterEach(func() {
				expectConsistent(n)
			})

			Specify("membership and positions", func() {
				Expect(n.Contains(7)).To(BeTrue())
				Expect(n.Contains(9)).To(BeFalse())
				Expect(n.ContainsAll(1, 3)).To(BeTrue())
				Expect(n.ContainsAll(1, 9)).To(BeFalse())
				Expect(n.ContainsAll()).To(BeTrue())
				Expect(n.IndexOf(3)).To(Equal(0))
				Expect(n.LastIndexOf(3)).To(Equal(3))
				Expect(n.IndexOf(9)).To(Equal(-1))
				Expect(n.LastIndexOf(9)).To(Equal(-1))
			})

			Specify("removing the first occurrence", func() {
				Expect(n.Remove(3)).To(BeTrue())
				Expect(n.Digits()).To(Equal(digits(1, 7, 3)))
				Expect(n.Remove(9)).To(BeFalse())
			})

			Specify("removing every occurrence", func() {
				Expect(n.RemoveAll(3, 9)).To(BeTrue())
				Expect(n.Digits()).To(Equal(digits(1, 7)))
				Expect(n.DecimalString()).To(Equal("17"))
				Expect(n.RemoveAll(9)).To(BeFalse())
			})

			Specify("retaining digits", func() {
				Expect(n.RetainAll(3)).To(BeTrue())
				Expect(n.Digits()).To(Equal(digits(3, 3)))
				Expect(n.RetainAll(3)).To(BeFalse())

				Expect(n.RetainAll()).To(BeTrue())
				Expect(n.IsEmpty()).To(BeTrue())
			})
		})
	}
})

var _ = Describe("sub lists", func() {
	for _, topo := range Topologies {
		Specify("a sub list is an independent copy on "+topo.String(), func() {
			n := parse(topo, "12345")

			sub := n.SubList(1, 4)
			expectConsistent(sub)
			Expect(sub.Digits()).To(Equal(digits(2, 3, 4)))
			Expect(sub.DecimalString()).To(Equal("234"))

			Expect(sub.Add(9)).To(Succeed())
			_, err := n.Set(1, 0)
			Expect(err).NotTo(HaveOccurred())

			Expect(sub.Digits()).To(Equal(digits(2, 3, 4, 9)))
			Expect(n.Digits()).To(Equal(digits(1, 0, 3, 4, 5)))
			expectConsistent(n)
		})

		Specify("bounds are clamped on "+topo.String(), func() {
			n := parse(topo, "12345")

			Expect(n.SubList(-3, 2).Digits()).To(Equal(digits(1, 2)))
			Expect(n.SubList(3, 99).Digits()).To(Equal(digits(4, 5)))
			Expect(n.SubList(4, 1).IsEmpty()).To(BeTrue())
			Expect(n.SubList(9, 12).IsEmpty()).To(BeTrue())
		})
	}
})

var _ = Describe("iteration", func() {
	Specify("All yields indexes and digits in order", func() {
		n := parse(list.CircularSingly, "9051")

		var (
			indexes []int
			values  []numlist.Digit
		)
		for i, d := range n.All() {
			indexes = append(indexes, i)
			values = append(values, d)
		}

		Expect(indexes).To(Equal([]int{0, 1, 2, 3}))
		Expect(values).To(Equal(digits(9, 0, 5, 1)))
	})

	Specify("Do stops when f returns false", func() {
		n := parse(list.LinearDoubly, "9051")

		var values []numlist.Digit
		n.Do(func(_ int, d numlist.Digit) bool {
			values = append(values, d)
			return d != 0
		})

		Expect(values).To(Equal(digits(9, 0)))
	})
})

var _ = Describe("equality", func() {
	Specify("numbers with equal values are equal regardless of base and topology", func() {
		a := parse(list.LinearSingly, "10")
		b := parse(list.CircularDoubly, "10").ChangeScale()

		Expect(b.String()).To(Equal("101"))
		Expect(a.Equal(b)).To(BeTrue())
		Expect(a.Hash()).To(Equal(b.Hash()))
	})

	Specify("numbers with different values are not equal", func() {
		a := parse(list.LinearSingly, "10")
		b := parse(list.LinearSingly, "11")

		Expect(a.Equal(b)).To(BeFalse())
		Expect(a.Equal(nil)).To(BeFalse())
	})

	Specify("an empty number equals zero", func() {
		Expect(parse(list.LinearSingly, "").Equal(parse(list.LinearSingly, "0"))).To(BeTrue())
	})
})
