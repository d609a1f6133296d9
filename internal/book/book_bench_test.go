package book

import "testing"

var benchSink int64

func seedLadders(bk Book, levels int) {
	id := OrderID(0)
	for i := 0; i < levels; i++ {
		id++
		_ = bk.AddOrder(id, Bid, Price(1500-i), 10)
		id++
		_ = bk.AddOrder(id, Ask, Price(1501+i), 10)
	}
}

func BenchmarkAddDelete(b *testing.B) {
	for _, impl := range implementations {
		b.Run(impl.name, func(b *testing.B) {
			bk := impl.make()
			seedLadders(bk, 500)
			id := OrderID(1 << 20)
			for b.Loop() {
				id++
				_ = bk.AddOrder(id, Bid, Price(1000+int64(id)%1000), 10)
				_ = bk.DeleteOrder(id)
			}
		})
	}
}

func BenchmarkModify(b *testing.B) {
	for _, impl := range implementations {
		b.Run(impl.name, func(b *testing.B) {
			bk := impl.make()
			seedLadders(bk, 500)
			vol := Volume(0)
			for b.Loop() {
				vol = vol%100 + 1
				_ = bk.ModifyOrder(1, vol)
			}
		})
	}
}

func BenchmarkBestPrices(b *testing.B) {
	for _, impl := range implementations {
		b.Run(impl.name, func(b *testing.B) {
			bk := impl.make()
			seedLadders(bk, 500)
			for b.Loop() {
				best, _ := bk.BestPrices()
				benchSink += int64(best.Bid) ^ int64(best.Ask)
			}
		})
	}
}
