package syslog_test

import (
	. "github.com/onsi/ginkgo"
	. "github.com/onsi/ginkgo/extensions/table"
	. "github.com/onsi/gomega"

	"github.com/allanhung/stdout-syslog/pkg/syslog"
)

var _ = Describe("Mask", func() {
	DescribeTable("MaskExact permits only its level",
		func(level int) {
			mask := syslog.MaskExact(level)
			Expect(mask).To(Equal(syslog.Mask(1 << uint(level))))
			for other := 0; other <= 7; other++ {
				Expect(syslog.Passes(other, mask)).To(Equal(other == level), "level %d", other)
			}
		},
		Entry("emerg", 0),
		Entry("alert", 1),
		Entry("crit", 2),
		Entry("err", 3),
		Entry("warning", 4),
		Entry("notice", 5),
		Entry("info", 6),
		Entry("debug", 7),
	)

	DescribeTable("MaskUpTo permits its level and everything more severe",
		func(level int, want syslog.Mask) {
			mask := syslog.MaskUpTo(level)
			Expect(mask).To(Equal(want))
			for other := 0; other <= 7; other++ {
				Expect(mask.Allows(other)).To(Equal(other <= level), "level %d", other)
			}
		},
		Entry("emerg", 0, syslog.Mask(0x01)),
		Entry("crit", 2, syslog.Mask(0x07)),
		Entry("warning", 4, syslog.Mask(0x1f)),
		Entry("info", 6, syslog.Mask(0x7f)),
		Entry("debug", 7, syslog.Mask(0xff)),
	)

	It("defaults to info and more severe", func() {
		Expect(syslog.DefaultMask).To(Equal(syslog.MaskUpTo(6)))
		Expect(syslog.DefaultMask.Allows(7)).To(BeFalse())
	})

	It("gives an unusable mask for out of range levels", func() {
		Expect(syslog.MaskExact(-1)).To(Equal(syslog.Mask(0)))
		Expect(syslog.MaskUpTo(-1)).To(Equal(syslog.Mask(0)))
		Expect(syslog.CheckLevel(8)).To(HaveOccurred())
		Expect(syslog.CheckLevel(7)).NotTo(HaveOccurred())
	})

	It("prints as hex", func() {
		Expect(syslog.MaskUpTo(4).String()).To(Equal("0x1f"))
	})
})
