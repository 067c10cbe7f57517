package rules

import (
	"fmt"
	"strings"
	"time"

	"github.com/admin/tg-bots/jyotish-engine/internal/domain"
)

// yogaRules полный список йог в порядке оценки
func yogaRules() []Rule {
	return []Rule{
		gajaKesari(),
		budhaditya(),
		chandraMangala(),
		mahapurusha("ruchaka", "Ruchaka Yoga", domain.Mars),
		mahapurusha("bhadra", "Bhadra Yoga", domain.Mercury),
		mahapurusha("hamsa", "Hamsa Yoga", domain.Jupiter),
		mahapurusha("malavya", "Malavya Yoga", domain.Venus),
		mahapurusha("sasa", "Sasa Yoga", domain.Saturn),
		neechaBhanga(),
		vipareeta("harsha", "Harsha Yoga", 6),
		vipareeta("sarala", "Sarala Yoga", 8),
		vipareeta("vimala", "Vimala Yoga", 12),
		rajaYoga(),
		dhanaYoga(),
		lakshmiYoga(),
		saraswatiYoga(),
		amalaYoga(),
		shubhaKartari(),
		paapKartari(),
		kemadruma(),
		sunapha(),
		anapha(),
		durudhura(),
		vesi(),
		vasi(),
		ubhayachari(),
		adhiYoga(),
		parivartana(),
		guruChandala(),
	}
}

// gajaKesari Юпитер в кендре от Луны
func gajaKesari() Rule {
	return rule{
		id: "gaja_kesari",
		evaluate: func(c *domain.ChartData, _ *time.Time) (*domain.RuleFinding, error) {
			moon := c.MoonPosition()
			jup, ok := c.Position(domain.Jupiter)
			if !ok {
				return nil, nil
			}
			n := domain.HouseOf(jup.Sign, moon.Sign)
			if !kendras[n] {
				return nil, nil
			}
			return yogaFinding("gaja_kesari", "Gaja Kesari Yoga", []string{
				fmt.Sprintf("Jupiter in %s, %s from Moon in %s", jup.SignName, ordinal(n), moon.SignName),
			}, domain.ConfidenceCertain), nil
		},
	}
}

// budhaditya соединение Солнца и Меркурия
func budhaditya() Rule {
	return rule{
		id: "budhaditya",
		evaluate: func(c *domain.ChartData, _ *time.Time) (*domain.RuleFinding, error) {
			sun, okS := c.Position(domain.Sun)
			mer, okM := c.Position(domain.Mercury)
			if !okS || !okM || sun.Sign != mer.Sign {
				return nil, nil
			}
			return yogaFinding("budhaditya", "Budhaditya Yoga", []string{
				fmt.Sprintf("Sun conjunct Mercury in %s (orb %.1f°)", sun.SignName, separation(sun.Longitude, mer.Longitude)),
			}, domain.ConfidenceCertain), nil
		},
	}
}

// chandraMangala Луна с Марсом в соединении или оппозиции
func chandraMangala() Rule {
	return rule{
		id: "chandra_mangala",
		evaluate: func(c *domain.ChartData, _ *time.Time) (*domain.RuleFinding, error) {
			moon := c.MoonPosition()
			mars, ok := c.Position(domain.Mars)
			if !ok {
				return nil, nil
			}
			switch domain.HouseOf(mars.Sign, moon.Sign) {
			case 1:
				return yogaFinding("chandra_mangala", "Chandra-Mangala Yoga", []string{
					fmt.Sprintf("Moon conjunct Mars in %s", moon.SignName),
				}, domain.ConfidenceCertain), nil
			case 7:
				return yogaFinding("chandra_mangala", "Chandra-Mangala Yoga", []string{
					fmt.Sprintf("Moon in %s opposite Mars in %s", moon.SignName, mars.SignName),
				}, domain.ConfidenceCertain), nil
			}
			return nil, nil
		},
	}
}

// mahapurusha одна из пяти Панча-Махапуруша-йог: граха в своём или
// экзальтационном знаке в кендре от Лагны
func mahapurusha(id, name string, p domain.Planet) Rule {
	return rule{
		id:          id,
		needsHouses: true,
		evaluate: func(c *domain.ChartData, _ *time.Time) (*domain.RuleFinding, error) {
			pos, ok := c.Position(p)
			if !ok {
				return nil, nil
			}
			dig := domain.DignityOf(p, pos.Sign)
			if dig != domain.DignityOwn && dig != domain.DignityExalted {
				return nil, nil
			}
			if !kendras[pos.House] {
				return nil, nil
			}
			phrase := "in own sign"
			if dig == domain.DignityExalted {
				phrase = "exalted"
			}
			return yogaFinding(id, name, []string{
				fmt.Sprintf("%s %s in %s (house %d)", p, phrase, pos.SignName, pos.House),
			}, domain.ConfidenceCertain), nil
		},
	}
}

// neechaBhanga отмена дебилитации: управитель знака падения либо граха,
// экзальтирующая в нём, стоит в кендре от Луны
func neechaBhanga() Rule {
	return rule{
		id: "neecha_bhanga",
		evaluate: func(c *domain.ChartData, _ *time.Time) (*domain.RuleFinding, error) {
			moonSign := c.MoonPosition().Sign
			var ev []string
			for _, pos := range c.Planets {
				if domain.DignityOf(pos.Planet, pos.Sign) != domain.DignityDebilitated {
					continue
				}
				lord := pos.Sign.Lord()
				if lp, ok := c.Position(lord); ok {
					if n := domain.HouseOf(lp.Sign, moonSign); kendras[n] {
						ev = append(ev, fmt.Sprintf("%s debilitated in %s; sign lord %s in %s from Moon",
							pos.Planet, pos.SignName, lord, ordinal(n)))
						continue
					}
				}
				for _, q := range domain.Planets {
					if q == pos.Planet {
						continue
					}
					ex, hasEx := q.ExaltationSign()
					if !hasEx || ex != pos.Sign {
						continue
					}
					if qp, ok := c.Position(q); ok {
						if n := domain.HouseOf(qp.Sign, moonSign); kendras[n] {
							ev = append(ev, fmt.Sprintf("%s debilitated in %s; %s, exalted in that sign, in %s from Moon",
								pos.Planet, pos.SignName, q, ordinal(n)))
							break
						}
					}
				}
			}
			if len(ev) == 0 {
				return nil, nil
			}
			return yogaFinding("neecha_bhanga", "Neecha Bhanga Raja Yoga", ev, domain.ConfidenceProbable), nil
		},
	}
}

// vipareeta одна из трёх Випарита-Раджа-йог: управитель дустханы в
// дустхане
func vipareeta(id, name string, house int) Rule {
	return rule{
		id:          id,
		needsHouses: true,
		evaluate: func(c *domain.ChartData, _ *time.Time) (*domain.RuleFinding, error) {
			lord := houseLord(c, house)
			pos, ok := c.Position(lord)
			if !ok {
				return nil, nil
			}
			if pos.House != 6 && pos.House != 8 && pos.House != 12 {
				return nil, nil
			}
			return yogaFinding(id, name, []string{
				fmt.Sprintf("%s, lord of house %d, placed in house %d", lord, house, pos.House),
			}, domain.ConfidenceCertain), nil
		},
	}
}

// rajaYoga соединение управителей кендры и триконы
func rajaYoga() Rule {
	return rule{
		id:          "raja_yoga",
		needsHouses: true,
		evaluate: func(c *domain.ChartData, _ *time.Time) (*domain.RuleFinding, error) {
			var ev []string
			seen := map[string]bool{}
			for _, k := range []int{1, 4, 7, 10} {
				for _, t := range []int{1, 5, 9} {
					if k == t {
						continue
					}
					lk, lt := houseLord(c, k), houseLord(c, t)
					if lk == lt {
						continue
					}
					pk, okK := c.Position(lk)
					pt, okT := c.Position(lt)
					if !okK || !okT || pk.Sign != pt.Sign {
						continue
					}
					pair := string(lk) + "+" + string(lt)
					if seen[pair] || seen[string(lt)+"+"+string(lk)] {
						continue
					}
					seen[pair] = true
					ev = append(ev, fmt.Sprintf("%s (lord of %d) conjunct %s (lord of %d) in %s",
						lk, k, lt, t, pk.SignName))
				}
			}
			if len(ev) == 0 {
				return nil, nil
			}
			return yogaFinding("raja_yoga", "Raja Yoga", ev, domain.ConfidenceCertain), nil
		},
	}
}

// dhanaYoga связь управителей 2-го и 11-го домов
func dhanaYoga() Rule {
	return rule{
		id:          "dhana_yoga",
		needsHouses: true,
		evaluate: func(c *domain.ChartData, _ *time.Time) (*domain.RuleFinding, error) {
			l2, l11 := houseLord(c, 2), houseLord(c, 11)
			p2, ok2 := c.Position(l2)
			p11, ok11 := c.Position(l11)
			var ev []string
			if ok2 && p2.House == 11 {
				ev = append(ev, fmt.Sprintf("%s, lord of house 2, placed in house 11", l2))
			}
			if ok11 && p11.House == 2 {
				ev = append(ev, fmt.Sprintf("%s, lord of house 11, placed in house 2", l11))
			}
			if ok2 && ok11 && l2 != l11 && p2.Sign == p11.Sign {
				ev = append(ev, fmt.Sprintf("lords of houses 2 and 11 conjunct in %s", p2.SignName))
			}
			if len(ev) == 0 {
				return nil, nil
			}
			return yogaFinding("dhana_yoga", "Dhana Yoga", ev, domain.ConfidenceCertain), nil
		},
	}
}

// lakshmiYoga сильный управитель 9-го дома в кендре или триконе
func lakshmiYoga() Rule {
	return rule{
		id:          "lakshmi_yoga",
		needsHouses: true,
		evaluate: func(c *domain.ChartData, _ *time.Time) (*domain.RuleFinding, error) {
			l9 := houseLord(c, 9)
			pos, ok := c.Position(l9)
			if !ok {
				return nil, nil
			}
			dig := domain.DignityOf(l9, pos.Sign)
			if dig != domain.DignityOwn && dig != domain.DignityExalted {
				return nil, nil
			}
			if !kendras[pos.House] && !trikonas[pos.House] {
				return nil, nil
			}
			phrase := "in own sign"
			if dig == domain.DignityExalted {
				phrase = "exalted"
			}
			return yogaFinding("lakshmi_yoga", "Lakshmi Yoga", []string{
				fmt.Sprintf("%s, lord of house 9, %s in %s (house %d)", l9, phrase, pos.SignName, pos.House),
			}, domain.ConfidenceCertain), nil
		},
	}
}

// saraswatiYoga Юпитер, Венера и Меркурий в кендрах, триконах или 2-м
func saraswatiYoga() Rule {
	return rule{
		id:          "saraswati_yoga",
		needsHouses: true,
		evaluate: func(c *domain.ChartData, _ *time.Time) (*domain.RuleFinding, error) {
			good := func(h int) bool { return kendras[h] || trikonas[h] || h == 2 }
			var ev []string
			for _, p := range []domain.Planet{domain.Jupiter, domain.Venus, domain.Mercury} {
				pos, ok := c.Position(p)
				if !ok || !good(pos.House) {
					return nil, nil
				}
				ev = append(ev, describe(pos))
			}
			return yogaFinding("saraswati_yoga", "Saraswati Yoga", ev, domain.ConfidenceCertain), nil
		},
	}
}

// amalaYoga только благодетели в 10-м от Луны или Лагны
func amalaYoga() Rule {
	return rule{
		id: "amala_yoga",
		evaluate: func(c *domain.ChartData, _ *time.Time) (*domain.RuleFinding, error) {
			var ev []string
			check := func(ref domain.Sign, basis string) {
				occupants := occupantsFrom(c, ref, 10, func(domain.Planet) bool { return true })
				var benefics []string
				for _, pos := range occupants {
					if pos.Planet.IsNaturalMalefic() {
						return
					}
					if pos.Planet.IsNaturalBenefic() {
						benefics = append(benefics, string(pos.Planet))
					}
				}
				if len(benefics) > 0 {
					ev = append(ev, fmt.Sprintf("%s alone in the 10th from %s", strings.Join(benefics, ", "), basis))
				}
			}
			check(c.MoonPosition().Sign, "Moon")
			if c.TimeKnown && c.Ascendant != nil {
				check(c.Ascendant.Sign, "Lagna")
			}
			if len(ev) == 0 {
				return nil, nil
			}
			return yogaFinding("amala_yoga", "Amala Yoga", ev, domain.ConfidenceCertain), nil
		},
	}
}

// shubhaKartari Луна, обрамлённая благодетелями во 2-м и 12-м
func shubhaKartari() Rule {
	return rule{
		id: "shubha_kartari",
		evaluate: func(c *domain.ChartData, _ *time.Time) (*domain.RuleFinding, error) {
			moonSign := c.MoonPosition().Sign
			second := occupantsFrom(c, moonSign, 2, benefic)
			twelfth := occupantsFrom(c, moonSign, 12, benefic)
			if len(second) == 0 || len(twelfth) == 0 {
				return nil, nil
			}
			return yogaFinding("shubha_kartari", "Shubha Kartari Yoga", []string{
				fmt.Sprintf("Moon hemmed by benefics: %s in the 2nd, %s in the 12th",
					describe(second[0]), describe(twelfth[0])),
			}, domain.ConfidenceCertain), nil
		},
	}
}

// paapKartari Луна, зажатая вредителями во 2-м и 12-м
func paapKartari() Rule {
	return rule{
		id: "paap_kartari",
		evaluate: func(c *domain.ChartData, _ *time.Time) (*domain.RuleFinding, error) {
			moonSign := c.MoonPosition().Sign
			second := occupantsFrom(c, moonSign, 2, malefic)
			twelfth := occupantsFrom(c, moonSign, 12, malefic)
			if len(second) == 0 || len(twelfth) == 0 {
				return nil, nil
			}
			f := yogaFinding("paap_kartari", "Paap Kartari Yoga", []string{
				fmt.Sprintf("Moon hemmed by malefics: %s in the 2nd, %s in the 12th",
					describe(second[0]), describe(twelfth[0])),
			}, domain.ConfidenceCertain)
			f.Severity = domain.SeverityModerate
			return f, nil
		},
	}
}

// kemadruma одинокая Луна: пусто в 1-м, 2-м и 12-м от неё
func kemadruma() Rule {
	return rule{
		id: "kemadruma",
		evaluate: func(c *domain.ChartData, _ *time.Time) (*domain.RuleFinding, error) {
			moonSign := c.MoonPosition().Sign
			for _, n := range []int{12, 1, 2} {
				if len(occupantsFrom(c, moonSign, n, taraGraha)) > 0 {
					return nil, nil
				}
			}
			f := yogaFinding("kemadruma", "Kemadruma Yoga", []string{
				"no planets beside the Moon in the 12th, 1st or 2nd from Moon",
			}, domain.ConfidenceCertain)
			f.Severity = domain.SeverityModerate

			// классическое смягчение: грахи в кендре от Луны
			var inKendra []string
			for _, pos := range c.Planets {
				if !taraGraha(pos.Planet) {
					continue
				}
				if kendras[domain.HouseOf(pos.Sign, moonSign)] {
					inKendra = append(inKendra, describe(pos))
				}
			}
			if len(inKendra) > 0 {
				f.Cancelled = true
				f.Severity = domain.SeverityNone
				f.CancellationReason = "planet in kendra from Moon: " + strings.Join(inKendra, ", ")
			}
			return f, nil
		},
	}
}

// moonFlanks занятость 2-го и 12-го от Луны пятью планетами
func moonFlanks(c *domain.ChartData) (second, twelfth []domain.PlanetPosition) {
	moonSign := c.MoonPosition().Sign
	return occupantsFrom(c, moonSign, 2, taraGraha), occupantsFrom(c, moonSign, 12, taraGraha)
}

// sunFlanks занятость 2-го и 12-го от Солнца пятью планетами
func sunFlanks(c *domain.ChartData) (second, twelfth []domain.PlanetPosition, ok bool) {
	sun, ok := c.Position(domain.Sun)
	if !ok {
		return nil, nil, false
	}
	return occupantsFrom(c, sun.Sign, 2, taraGraha), occupantsFrom(c, sun.Sign, 12, taraGraha), true
}

func sunapha() Rule {
	return rule{
		id: "sunapha",
		evaluate: func(c *domain.ChartData, _ *time.Time) (*domain.RuleFinding, error) {
			second, twelfth := moonFlanks(c)
			if len(second) == 0 || len(twelfth) > 0 {
				return nil, nil
			}
			return yogaFinding("sunapha", "Sunapha Yoga", []string{
				fmt.Sprintf("%s in the 2nd from Moon, 12th empty", describe(second[0])),
			}, domain.ConfidenceCertain), nil
		},
	}
}

func anapha() Rule {
	return rule{
		id: "anapha",
		evaluate: func(c *domain.ChartData, _ *time.Time) (*domain.RuleFinding, error) {
			second, twelfth := moonFlanks(c)
			if len(twelfth) == 0 || len(second) > 0 {
				return nil, nil
			}
			return yogaFinding("anapha", "Anapha Yoga", []string{
				fmt.Sprintf("%s in the 12th from Moon, 2nd empty", describe(twelfth[0])),
			}, domain.ConfidenceCertain), nil
		},
	}
}

func durudhura() Rule {
	return rule{
		id: "durudhura",
		evaluate: func(c *domain.ChartData, _ *time.Time) (*domain.RuleFinding, error) {
			second, twelfth := moonFlanks(c)
			if len(second) == 0 || len(twelfth) == 0 {
				return nil, nil
			}
			return yogaFinding("durudhura", "Durudhura Yoga", []string{
				fmt.Sprintf("Moon flanked on both sides: %s in the 2nd, %s in the 12th",
					describe(second[0]), describe(twelfth[0])),
			}, domain.ConfidenceCertain), nil
		},
	}
}

func vesi() Rule {
	return rule{
		id: "vesi",
		evaluate: func(c *domain.ChartData, _ *time.Time) (*domain.RuleFinding, error) {
			second, twelfth, ok := sunFlanks(c)
			if !ok || len(second) == 0 || len(twelfth) > 0 {
				return nil, nil
			}
			return yogaFinding("vesi", "Vesi Yoga", []string{
				fmt.Sprintf("%s in the 2nd from Sun, 12th empty", describe(second[0])),
			}, domain.ConfidenceCertain), nil
		},
	}
}

func vasi() Rule {
	return rule{
		id: "vasi",
		evaluate: func(c *domain.ChartData, _ *time.Time) (*domain.RuleFinding, error) {
			second, twelfth, ok := sunFlanks(c)
			if !ok || len(twelfth) == 0 || len(second) > 0 {
				return nil, nil
			}
			return yogaFinding("vasi", "Vasi Yoga", []string{
				fmt.Sprintf("%s in the 12th from Sun, 2nd empty", describe(twelfth[0])),
			}, domain.ConfidenceCertain), nil
		},
	}
}

func ubhayachari() Rule {
	return rule{
		id: "ubhayachari",
		evaluate: func(c *domain.ChartData, _ *time.Time) (*domain.RuleFinding, error) {
			second, twelfth, ok := sunFlanks(c)
			if !ok || len(second) == 0 || len(twelfth) == 0 {
				return nil, nil
			}
			return yogaFinding("ubhayachari", "Ubhayachari Yoga", []string{
				fmt.Sprintf("Sun flanked on both sides: %s in the 2nd, %s in the 12th",
					describe(second[0]), describe(twelfth[0])),
			}, domain.ConfidenceCertain), nil
		},
	}
}

// adhiYoga все три благодетеля в 6-м, 7-м или 8-м от Луны
func adhiYoga() Rule {
	return rule{
		id: "adhi_yoga",
		evaluate: func(c *domain.ChartData, _ *time.Time) (*domain.RuleFinding, error) {
			moonSign := c.MoonPosition().Sign
			var ev []string
			for _, p := range []domain.Planet{domain.Mercury, domain.Jupiter, domain.Venus} {
				pos, ok := c.Position(p)
				if !ok {
					return nil, nil
				}
				n := domain.HouseOf(pos.Sign, moonSign)
				if n < 6 || n > 8 {
					return nil, nil
				}
				ev = append(ev, fmt.Sprintf("%s in the %s from Moon", p, ordinal(n)))
			}
			return yogaFinding("adhi_yoga", "Adhi Yoga", ev, domain.ConfidenceCertain), nil
		},
	}
}

// parivartana взаимный обмен знаками
func parivartana() Rule {
	return rule{
		id: "parivartana",
		evaluate: func(c *domain.ChartData, _ *time.Time) (*domain.RuleFinding, error) {
			var ev []string
			for i := 0; i < len(c.Planets); i++ {
				for j := i + 1; j < len(c.Planets); j++ {
					a, b := c.Planets[i], c.Planets[j]
					if a.Planet.IsNode() || b.Planet.IsNode() {
						continue
					}
					if a.Sign.Lord() == b.Planet && b.Sign.Lord() == a.Planet {
						ev = append(ev, fmt.Sprintf("%s in %s exchanges signs with %s in %s",
							a.Planet, a.SignName, b.Planet, b.SignName))
					}
				}
			}
			if len(ev) == 0 {
				return nil, nil
			}
			return yogaFinding("parivartana", "Parivartana Yoga", ev, domain.ConfidenceCertain), nil
		},
	}
}

// guruChandala Юпитер в соединении с Раху
func guruChandala() Rule {
	return rule{
		id: "guru_chandala",
		evaluate: func(c *domain.ChartData, _ *time.Time) (*domain.RuleFinding, error) {
			jup, okJ := c.Position(domain.Jupiter)
			rahu, okR := c.Position(domain.Rahu)
			if !okJ || !okR || jup.Sign != rahu.Sign {
				return nil, nil
			}
			f := yogaFinding("guru_chandala", "Guru-Chandala Yoga", []string{
				fmt.Sprintf("Jupiter conjunct Rahu in %s (orb %.1f°)", jup.SignName, separation(jup.Longitude, rahu.Longitude)),
			}, domain.ConfidenceCertain)
			f.Severity = domain.SeverityModerate
			return f, nil
		},
	}
}
