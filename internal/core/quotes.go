package core

// leadershipQuotes is the fixed quote pool for the per-day quote. Order and
// size are load-bearing: the deterministic index in ClassifyDay must keep
// producing the same quote for the same date.
var leadershipQuotes = []string{
	"A leader is one who knows the way, goes the way, and shows the way. - John C. Maxwell",
	"Leadership is the capacity to translate vision into reality. - Warren Bennis",
	"Before you are a leader, success is all about growing yourself. When you become a leader, success is all about growing others. - Jack Welch",
	"The function of leadership is to produce more leaders, not more followers. - Ralph Nader",
	"Leadership and learning are indispensable to each other. - John F. Kennedy",
	"Innovation distinguishes between a leader and a follower. - Steve Jobs",
	"Do not follow where the path may lead. Go instead where there is no path and leave a trail. - Ralph Waldo Emerson",
	"A good leader takes a little more than his share of the blame, a little less than his share of the credit. - Arnold H. Glasow",
	"The art of leadership is saying no, not saying yes. It is very easy to say yes. - Tony Blair",
	"Great leaders are not defined by the absence of weakness, but rather by the presence of clear strengths. - John Zenger",
	"He who has never learned to obey cannot be a good commander. - Aristotle",
	"I suppose leadership at one time meant muscles; but today it means getting along with people. - Mahatma Gandhi",
	"Leadership is unlocking people's potential to become better. - Bill Bradley",
	"Become the kind of leader that people would follow voluntarily; even if you had no title or position. - Brian Tracy",
	"Leadership is not a position or a title, it is action and example. - Cory Booker",
	"The greatest leader is not necessarily the one who does the greatest things. He is the one that gets the people to do the greatest things. - Ronald Reagan",
	"To handle yourself, use your head; to handle others, use your heart. - Eleanor Roosevelt",
	"Leadership is the art of giving people a platform for spreading ideas that work. - Seth Godin",
	"A true leader has the confidence to stand alone, the courage to make tough decisions, and the compassion to listen to the needs of others. - Douglas MacArthur",
	"The challenge of leadership is to be strong, but not rude; be kind, but not weak; be bold, but not bully; be thoughtful, but not lazy; be humble, but not timid. - Jim Rohn",
	"Management is doing things right; leadership is doing the right things. - Peter Drucker",
	"Don't find fault, find a remedy. - Henry Ford",
	"Leaders think and talk about the solutions. Followers think and talk about the problems. - Brian Tracy",
	"A leader is a dealer in hope. - Napoleon Bonaparte",
	"You don't lead by pointing and telling people some place to go. You lead by going to that place and making a case. - Ken Kesey",
	"If your actions inspire others to dream more, learn more, do more and become more, you are a leader. - John Quincy Adams",
	"Earn your leadership every day. - Michael Jordan",
	"Leadership is the ability to guide others without force into a direction or decision that leaves them still feeling empowered and accomplished. - Lisa Cash Hanson",
	"Effective leadership is not about making speeches or being liked; leadership is defined by results not attributes. - Peter Drucker",
	"Anyone can hold the helm when the sea is calm. - Publilius Syrus",
	"A leader takes people where they want to go. A great leader takes people where they don't necessarily want to go, but ought to be. - Rosalynn Carter",
}

// QuoteForDate selects the quote for a date. Distinct years are separated by
// 1000 and months by 50 before reduction into the pool, and the month term is
// zero-based, so existing saved data keeps resolving to the same quote.
func QuoteForDate(d Date) string {
	idx := (d.Year()*1000 + (int(d.Month())-1)*50 + d.Day()) % len(leadershipQuotes)
	return leadershipQuotes[idx]
}
